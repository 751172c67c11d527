package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
	"github.com/diegoclair/meeting-alarm-bot/internal/logger"
)

// maxParallelBuckets bounds how many buckets are notified at the same time.
const maxParallelBuckets = 8

type scheduler struct {
	schedule    *scheduleService
	resolver    contract.DestinationResolver
	messenger   contract.Messenger
	clock       clock.Clock
	log         *zap.Logger
	interval    time.Duration
	sendTimeout time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

func newScheduler(schedule *scheduleService, resolver contract.DestinationResolver, messenger contract.Messenger,
	clk clock.Clock, log *zap.Logger, interval, sendTimeout time.Duration) *scheduler {

	return &scheduler{
		schedule:    schedule,
		resolver:    resolver,
		messenger:   messenger,
		clock:       clk,
		log:         log.Named("scheduler"),
		interval:    interval,
		sendTimeout: sendTimeout,
	}
}

// Start begins ticking. A tick that is still running when the next one is due
// makes cron skip the new one, so ticks never overlap.
func (s *scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	cl := logger.Cron(s.log)
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", s.interval), func() { s.tick(context.Background()) }); err != nil {
		return fmt.Errorf("failed to schedule tick: %w", err)
	}

	s.log.Info("scheduler starting", zap.Duration("interval", s.interval))
	c.Start()
	s.cron = c
	s.running = true
	return nil
}

// Stop stops the timer and waits for a running tick to finish.
func (s *scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.log.Info("scheduler stopping")
	<-s.cron.Stop().Done()
	s.running = false
}

// tick is one scan-and-fire pass.
func (s *scheduler) tick(ctx context.Context) {
	now := s.clock.Now().UTC()
	log := s.log.With(zap.String("tick", uuid.NewString()))

	// Everyone deserves a day off
	if now.Weekday() == time.Sunday {
		log.Debug("sunday, skipping tick")
		return
	}

	due := s.schedule.dueEntries(now)
	if len(due) == 0 {
		return
	}

	// buckets are independent: a slow destination only delays its own bucket
	var g errgroup.Group
	g.SetLimit(maxParallelBuckets)
	for _, b := range due {
		g.Go(func() error {
			for _, e := range b.entries {
				s.fire(ctx, log, b.key, e, now)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// fire notifies one entry. lastFired only advances after a confirmed send.
func (s *scheduler) fire(ctx context.Context, log *zap.Logger, key entity.BucketKey, e entity.Entry, now time.Time) {
	log = log.With(zap.Stringer("bucket", key), zap.String("time", e.Time()))

	ctx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	target, err := s.resolver.Resolve(ctx, e)
	if err != nil {
		log.Error("destination not reachable, skipping entry",
			zap.String("destination", e.DestinationID), zap.Error(err))
		return
	}

	if err := s.messenger.Send(ctx, target, s.message(e)); err != nil {
		log.Error("failed to send notification", zap.String("target", target.ID), zap.Error(err))
		return
	}

	err = s.schedule.MarkFired(context.Background(), key, e.Time(), now.Unix())
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		log.Debug("entry removed while firing")
	case err != nil:
		log.Error("failed to persist fire time", zap.Error(err))
	default:
		log.Info("notification sent", zap.String("target", target.ID))
	}
}

func (s *scheduler) message(e entity.Entry) string {
	if e.Kind == entity.Guild {
		return fmt.Sprintf(domain.GuildNotificationFormat, s.messenger.MentionEveryone(), e.Time())
	}
	return fmt.Sprintf(domain.DirectNotificationFormat, e.Time())
}
