package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/contract"
	"github.com/diegoclair/meeting-alarm-bot/internal/domain/entity"
)

// scheduleService owns every Entry. All reads and writes go through mu, and
// each mutation is written through to the snapshotter before returning.
type scheduleService struct {
	mu          sync.Mutex
	state       *entity.Snapshot
	snapshots   contract.Snapshotter
	log         *zap.Logger
	saveTimeout time.Duration

	// rejected is set while the stored snapshot was refused at load and
	// nothing has replaced it yet
	rejected bool
}

func newSchedule(snapshots contract.Snapshotter, log *zap.Logger, saveTimeout time.Duration) *scheduleService {
	return &scheduleService{
		state:       entity.NewSnapshot(),
		snapshots:   snapshots,
		log:         log.Named("schedule"),
		saveTimeout: saveTimeout,
	}
}

// Load replaces the in-memory state with the persisted snapshot. A corrupt or
// incompatible snapshot is logged and the store starts empty, leaving the
// stored document alone until the first mutation; any other error is returned
// so unreadable data is never overwritten.
func (s *scheduleService) Load(ctx context.Context) error {
	snap, err := s.snapshots.Load(ctx)
	rejected := false
	switch {
	case errors.Is(err, domain.ErrPersistenceCorrupt), errors.Is(err, domain.ErrSchemaMismatch):
		s.log.Warn("ignoring stored schedules, starting empty", zap.Error(err))
		snap = entity.NewSnapshot()
		rejected = true
	case err != nil:
		return fmt.Errorf("failed to load schedules: %w", err)
	}

	s.mu.Lock()
	s.state = snap
	s.rejected = rejected
	s.mu.Unlock()

	s.log.Info("schedules loaded",
		zap.Int("guilds", len(snap.Guild)),
		zap.Int("dms", len(snap.DirectMessage)),
		zap.Int("entries", snap.Len()),
	)
	return nil
}

// Flush writes the current state one last time. It is a no-op while a
// rejected snapshot is still the one on disk.
func (s *scheduleService) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rejected {
		s.log.Info("nothing changed since the stored schedules were rejected, keeping them")
		return nil
	}
	return s.save(ctx)
}

// save must be called with mu held.
func (s *scheduleService) save(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()

	if err := s.snapshots.Save(ctx, s.state); err != nil {
		return fmt.Errorf("failed to save schedules: %w", err)
	}
	s.rejected = false
	return nil
}

// mutate runs fn on the bucket for key and persists the result. When saving
// fails the bucket is restored so memory never gets ahead of disk.
func (s *scheduleService) mutate(ctx context.Context, key entity.BucketKey, fn func(b *entity.Bucket) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.state.Bucket(key)
	prev := b.Clone()

	if err := fn(b); err != nil {
		return err
	}

	if err := s.save(ctx); err != nil {
		s.state.Put(key, prev)
		return err
	}
	return nil
}

func (s *scheduleService) AddEntry(ctx context.Context, key entity.BucketKey, hour, minute int, destinationID, authorID string) (entity.Entry, error) {
	guildID := ""
	if key.Kind == entity.Guild {
		guildID = key.OwnerID
	}

	e, err := entity.NewEntry(key.Kind, hour, minute, guildID, destinationID, authorID)
	if err != nil {
		return entity.Entry{}, err
	}

	err = s.mutate(ctx, key, func(b *entity.Bucket) error {
		return b.Insert(e)
	})
	if err != nil {
		return entity.Entry{}, err
	}

	s.log.Info("entry added", zap.Stringer("bucket", key), zap.String("time", e.Time()))
	return *e, nil
}

// ListEntries returns copies of the bucket's entries in ascending time order.
func (s *scheduleService) ListEntries(key entity.BucketKey) []entity.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.state.Bucket(key)
	out := make([]entity.Entry, 0, len(b.Entries))
	for _, e := range b.Entries {
		out = append(out, *e)
	}
	return out
}

func (s *scheduleService) DeleteEntry(ctx context.Context, key entity.BucketKey, index int) (entity.Entry, error) {
	var removed *entity.Entry
	err := s.mutate(ctx, key, func(b *entity.Bucket) error {
		var err error
		removed, err = b.Remove(index)
		return err
	})
	if err != nil {
		return entity.Entry{}, err
	}

	s.log.Info("entry deleted", zap.Stringer("bucket", key), zap.String("time", removed.Time()))
	return *removed, nil
}

func (s *scheduleService) ClearEntries(ctx context.Context, key entity.BucketKey) (int, error) {
	var n int
	err := s.mutate(ctx, key, func(b *entity.Bucket) error {
		n = b.Clear()
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info("entries cleared", zap.Stringer("bucket", key), zap.Int("count", n))
	return n, nil
}

func (s *scheduleService) SetTimezone(ctx context.Context, key entity.BucketKey, offset int) error {
	if !domain.ValidOffset(offset) {
		return fmt.Errorf("%w: %d", domain.ErrInvalidOffset, offset)
	}

	return s.mutate(ctx, key, func(b *entity.Bucket) error {
		b.UTCOffset = &offset
		return nil
	})
}

// GetTimezone reports the bucket's offset and whether one was ever set.
func (s *scheduleService) GetTimezone(key entity.BucketKey) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.state.Bucket(key)
	if b.UTCOffset == nil {
		return 0, false
	}
	return *b.UTCOffset, true
}

// MarkFired records a successful fire. The in-memory value is kept even if the
// save fails, so a disk problem cannot cause a duplicate notification.
func (s *scheduleService) MarkFired(ctx context.Context, key entity.BucketKey, entryTime string, firedAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.state.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: bucket %s", domain.ErrEntryNotFound, key)
	}
	e := b.Find(entryTime)
	if e == nil {
		return fmt.Errorf("%w: %s in %s", domain.ErrEntryNotFound, entryTime, key)
	}

	e.LastFired = firedAt
	return s.save(ctx)
}

// dueBucket is a bucket's share of one tick's work.
type dueBucket struct {
	key     entity.BucketKey
	entries []entity.Entry
}

// dueEntries collects copies of every entry that should fire at now.
func (s *scheduleService) dueEntries(now time.Time) []dueBucket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []dueBucket
	s.state.Each(func(key entity.BucketKey, b *entity.Bucket) {
		local := domain.LocalTime(now, b.Offset())

		var due []entity.Entry
		for _, e := range b.Entries {
			if isDue(*e, local, now) {
				due = append(due, *e)
			}
		}
		if len(due) > 0 {
			out = append(out, dueBucket{key: key, entries: due})
		}
	})
	return out
}

// isDue matches the entry against the bucket-local clock and the cooldown.
func isDue(e entity.Entry, local, now time.Time) bool {
	if e.Hour != local.Hour() || e.Minute != local.Minute() {
		return false
	}
	return now.Unix()-e.LastFired > domain.CooldownSeconds
}
