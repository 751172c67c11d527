// Package persistence turns the schedule state into the versioned JSON
// snapshot and back, on top of a raw storage backend.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
	"github.com/diegoclair/meeting-alarm-bot/pkg/models"
)

type snapshotter struct {
	storage contract.SnapshotStorage
	log     *zap.Logger
}

// NewSnapshotter creates a Snapshotter over the given backend.
func NewSnapshotter(storage contract.SnapshotStorage, log *zap.Logger) contract.Snapshotter {
	return &snapshotter{storage: storage, log: log}
}

// Load returns an empty snapshot when nothing is stored. Undecodable data
// yields ErrPersistenceCorrupt and a foreign version yields ErrSchemaMismatch.
// Invalid entries inside an otherwise valid document are dropped with a warning.
func (s *snapshotter) Load(ctx context.Context) (*entity.Snapshot, error) {
	data, err := s.storage.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	if data == nil {
		return entity.NewSnapshot(), nil
	}

	snap, skipped, err := Decode(data)
	if err != nil {
		return nil, err
	}
	for _, e := range skipped {
		s.log.Warn("dropping invalid stored entry", zap.Error(e))
	}
	return snap, nil
}

func (s *snapshotter) Save(ctx context.Context, snap *entity.Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	if err := s.storage.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Encode serializes the whole state with the current version tag.
func Encode(snap *entity.Snapshot) ([]byte, error) {
	doc := models.Snapshot{
		Version:       domain.SnapshotVersion,
		ScheduleGuild: encodeGroup(snap.Guild),
		ScheduleDM:    encodeGroup(snap.DirectMessage),
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

func encodeGroup(group map[string]*entity.Bucket) map[string]models.Bucket {
	out := make(map[string]models.Bucket, len(group))
	for id, b := range group {
		entries := make([]models.Entry, 0, len(b.Entries))
		for _, e := range b.Entries {
			entries = append(entries, models.Entry{
				Time:      e.Time(),
				Hour:      e.Hour,
				Minute:    e.Minute,
				Fired:     models.EpochTime(e.LastFired),
				GuildID:   models.ID(e.GuildID),
				ChannelID: models.ID(e.DestinationID),
				AuthorID:  models.ID(e.AuthorID),
			})
		}
		out[id] = models.Bucket{Entries: entries, UTCOffset: b.UTCOffset}
	}
	return out
}

// Decode parses and validates a snapshot document. Entries and offsets that
// fail validation are left out of the result and reported in skipped, each
// wrapping ErrPersistenceCorrupt.
func Decode(data []byte) (snap *entity.Snapshot, skipped []error, err error) {
	var doc models.Snapshot
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrPersistenceCorrupt, err)
	}
	if doc.Version != domain.SnapshotVersion {
		return nil, nil, fmt.Errorf("%w: got %q, want %q", domain.ErrSchemaMismatch, doc.Version, domain.SnapshotVersion)
	}

	snap = entity.NewSnapshot()
	skipped = decodeGroup(snap, entity.Guild, doc.ScheduleGuild, skipped)
	skipped = decodeGroup(snap, entity.DirectMessage, doc.ScheduleDM, skipped)
	return snap, skipped, nil
}

func decodeGroup(snap *entity.Snapshot, kind entity.OwnerKind, group map[string]models.Bucket, skipped []error) []error {
	for id, mb := range group {
		key := entity.BucketKey{Kind: kind, OwnerID: id}

		b := &entity.Bucket{UTCOffset: mb.UTCOffset}
		if mb.UTCOffset != nil && !domain.ValidOffset(*mb.UTCOffset) {
			skipped = append(skipped, fmt.Errorf("%w: bucket %s has offset %d", domain.ErrPersistenceCorrupt, key, *mb.UTCOffset))
			b.UTCOffset = nil
		}

		for _, me := range mb.Entries {
			e, err := entity.NewEntry(kind, me.Hour, me.Minute, string(me.GuildID), string(me.ChannelID), string(me.AuthorID))
			if err != nil {
				skipped = append(skipped, fmt.Errorf("%w: bucket %s: %v", domain.ErrPersistenceCorrupt, key, err))
				continue
			}
			e.LastFired = int64(me.Fired)
			if err := b.Insert(e); err != nil {
				skipped = append(skipped, fmt.Errorf("%w: bucket %s: %v", domain.ErrPersistenceCorrupt, key, err))
			}
		}
		snap.Put(key, b)
	}
	return skipped
}
