package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
)

type resolver struct {
	messenger contract.Messenger
}

func newResolver(messenger contract.Messenger) *resolver {
	return &resolver{messenger: messenger}
}

// Resolve finds where an entry's notification goes: the stored channel for
// guild entries, the author's private channel for direct-message entries.
func (r *resolver) Resolve(ctx context.Context, entry entity.Entry) (*entity.Target, error) {
	var (
		target *entity.Target
		err    error
	)

	switch entry.Kind {
	case entity.Guild:
		target, err = r.messenger.Channel(ctx, entry.DestinationID)
	case entity.DirectMessage:
		target, err = r.messenger.DirectChannel(ctx, entry.AuthorID)
	default:
		return nil, fmt.Errorf("%w: unknown owner kind %s", domain.ErrInvalidEntry, entry.Kind)
	}

	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s entry at %s", domain.ErrDestinationNotFound, entry.Kind, entry.Time())
	}
	return target, nil
}
