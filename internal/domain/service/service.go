package service

import (
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain/contract"
)

type Options struct {
	TickInterval time.Duration
	SendTimeout  time.Duration
	SaveTimeout  time.Duration
	Clock        clock.Clock
}

type Services struct {
	Schedule  *scheduleService
	Resolver  *resolver
	Scheduler *scheduler
}

func New(snapshots contract.Snapshotter, messenger contract.Messenger, log *zap.Logger, opts Options) *Services {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}

	schedule := newSchedule(snapshots, log, opts.SaveTimeout)
	res := newResolver(messenger)

	return &Services{
		Schedule:  schedule,
		Resolver:  res,
		Scheduler: newScheduler(schedule, res, messenger, opts.Clock, log, opts.TickInterval, opts.SendTimeout),
	}
}
