package contract

import (
	"context"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
)

// ScheduleService is what the command layer can do with a bucket
type ScheduleService interface {
	AddEntry(ctx context.Context, key entity.BucketKey, hour, minute int, destinationID, authorID string) (entity.Entry, error)
	ListEntries(key entity.BucketKey) []entity.Entry
	DeleteEntry(ctx context.Context, key entity.BucketKey, index int) (entity.Entry, error)
	ClearEntries(ctx context.Context, key entity.BucketKey) (int, error)
	SetTimezone(ctx context.Context, key entity.BucketKey, offset int) error
	GetTimezone(key entity.BucketKey) (int, bool)
}

// DestinationResolver maps an entry to a live send target
type DestinationResolver interface {
	Resolve(ctx context.Context, entry entity.Entry) (*entity.Target, error)
}
