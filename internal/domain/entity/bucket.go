package entity

import (
	"fmt"
	"sort"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
)

// Bucket holds one owner's entries, always sorted by time of day, plus the
// optional UTC offset they are interpreted in.
type Bucket struct {
	Entries   []*Entry
	UTCOffset *int
}

// Offset returns the configured offset, 0 when unset.
func (b *Bucket) Offset() int {
	if b.UTCOffset == nil {
		return 0
	}
	return *b.UTCOffset
}

// Insert adds e keeping the bucket sorted. It enforces the capacity and the
// one-entry-per-time rule.
func (b *Bucket) Insert(e *Entry) error {
	if len(b.Entries) >= domain.ScheduleLimit {
		return fmt.Errorf("%w: limit is %d", domain.ErrScheduleFull, domain.ScheduleLimit)
	}
	if b.Find(e.Time()) != nil {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateTime, e.Time())
	}

	b.Entries = append(b.Entries, e)
	sort.SliceStable(b.Entries, func(i, j int) bool {
		return b.Entries[i].before(b.Entries[j])
	})
	return nil
}

// Find returns the entry scheduled at hhmm, or nil.
func (b *Bucket) Find(hhmm string) *Entry {
	for _, e := range b.Entries {
		if e.Time() == hhmm {
			return e
		}
	}
	return nil
}

// Remove deletes the entry at the 0-based index of the current order.
func (b *Bucket) Remove(index int) (*Entry, error) {
	if index < 0 || index >= len(b.Entries) {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidIndex, index)
	}

	removed := b.Entries[index]
	b.Entries = append(b.Entries[:index:index], b.Entries[index+1:]...)
	return removed, nil
}

// Clear empties the bucket and returns how many entries were removed.
func (b *Bucket) Clear() int {
	n := len(b.Entries)
	b.Entries = nil
	return n
}

// Clone returns a deep copy.
func (b *Bucket) Clone() *Bucket {
	out := &Bucket{Entries: make([]*Entry, 0, len(b.Entries))}
	for _, e := range b.Entries {
		cp := *e
		out.Entries = append(out.Entries, &cp)
	}
	if b.UTCOffset != nil {
		offset := *b.UTCOffset
		out.UTCOffset = &offset
	}
	return out
}
