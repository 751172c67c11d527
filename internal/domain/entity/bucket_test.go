package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
)

func newGuildEntry(t *testing.T, hour, minute int) *Entry {
	t.Helper()
	e, err := NewEntry(Guild, hour, minute, "G1", "C1", "U1")
	require.NoError(t, err)
	return e
}

func times(b *Bucket) []string {
	out := make([]string, 0, len(b.Entries))
	for _, e := range b.Entries {
		out = append(out, e.Time())
	}
	return out
}

func TestBucket_Insert(t *testing.T) {
	t.Run("Should keep entries sorted", func(t *testing.T) {
		b := &Bucket{}
		require.NoError(t, b.Insert(newGuildEntry(t, 10, 0)))
		require.NoError(t, b.Insert(newGuildEntry(t, 9, 30)))
		require.NoError(t, b.Insert(newGuildEntry(t, 23, 59)))
		require.NoError(t, b.Insert(newGuildEntry(t, 0, 0)))

		assert.Equal(t, []string{"00:00", "09:30", "10:00", "23:59"}, times(b))
	})

	t.Run("Should reject duplicate time", func(t *testing.T) {
		b := &Bucket{}
		require.NoError(t, b.Insert(newGuildEntry(t, 9, 30)))

		err := b.Insert(newGuildEntry(t, 9, 30))
		assert.ErrorIs(t, err, domain.ErrDuplicateTime)
		assert.Len(t, b.Entries, 1)
	})

	t.Run("Should reject ninth entry", func(t *testing.T) {
		b := &Bucket{}
		for i := 0; i < domain.ScheduleLimit; i++ {
			require.NoError(t, b.Insert(newGuildEntry(t, i, 0)))
		}

		err := b.Insert(newGuildEntry(t, 20, 0))
		assert.ErrorIs(t, err, domain.ErrScheduleFull)
		assert.Len(t, b.Entries, domain.ScheduleLimit)
	})
}

func TestBucket_Remove(t *testing.T) {
	b := &Bucket{}
	for _, h := range []int{8, 9, 10} {
		require.NoError(t, b.Insert(newGuildEntry(t, h, 0)))
	}

	removed, err := b.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, "08:00", removed.Time())
	assert.Equal(t, []string{"09:00", "10:00"}, times(b))

	_, err = b.Remove(2)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
	_, err = b.Remove(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
	assert.Len(t, b.Entries, 2)
}

func TestBucket_Clear(t *testing.T) {
	b := &Bucket{}
	require.NoError(t, b.Insert(newGuildEntry(t, 8, 0)))
	require.NoError(t, b.Insert(newGuildEntry(t, 9, 0)))

	assert.Equal(t, 2, b.Clear())
	assert.Empty(t, b.Entries)
	assert.Equal(t, 0, b.Clear())
}

func TestBucket_Clone(t *testing.T) {
	offset := 3
	b := &Bucket{UTCOffset: &offset}
	require.NoError(t, b.Insert(newGuildEntry(t, 8, 0)))

	c := b.Clone()
	c.Entries[0].LastFired = 100
	*c.UTCOffset = 5

	assert.Equal(t, int64(0), b.Entries[0].LastFired)
	assert.Equal(t, 3, b.Offset())
	assert.Equal(t, 5, c.Offset())
}

func TestBucket_Offset(t *testing.T) {
	assert.Equal(t, 0, (&Bucket{}).Offset())
}

func TestNewEntry(t *testing.T) {
	tests := []struct {
		name    string
		kind    OwnerKind
		hour    int
		minute  int
		guildID string
		dest    string
		author  string
		wantErr error
	}{
		{name: "Should build guild entry", kind: Guild, hour: 9, minute: 30, guildID: "G1", dest: "C1", author: "U1"},
		{name: "Should build dm entry without guild", kind: DirectMessage, hour: 9, minute: 30, dest: "U1", author: "U1"},
		{name: "Should reject hour out of range", kind: Guild, hour: 24, guildID: "G1", dest: "C1", author: "U1", wantErr: domain.ErrInvalidTimeFormat},
		{name: "Should reject minute out of range", kind: Guild, minute: -1, guildID: "G1", dest: "C1", author: "U1", wantErr: domain.ErrInvalidTimeFormat},
		{name: "Should reject guild entry without guild", kind: Guild, dest: "C1", author: "U1", wantErr: domain.ErrInvalidEntry},
		{name: "Should reject unknown kind", kind: OwnerKind(7), dest: "C1", author: "U1", wantErr: domain.ErrInvalidEntry},
		{name: "Should reject missing destination", kind: DirectMessage, author: "U1", wantErr: domain.ErrInvalidEntry},
		{name: "Should reject missing author", kind: DirectMessage, dest: "U1", wantErr: domain.ErrInvalidEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntry(tt.kind, tt.hour, tt.minute, tt.guildID, tt.dest, tt.author)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.FormatTime(tt.hour, tt.minute), e.Time())
			assert.Zero(t, e.LastFired)
		})
	}
}

func TestSnapshot(t *testing.T) {
	snap := NewSnapshot()

	_, ok := snap.Lookup(GuildKey("G1"))
	assert.False(t, ok)

	b := snap.Bucket(GuildKey("G1"))
	require.NotNil(t, b)
	assert.Same(t, b, snap.Bucket(GuildKey("G1")))

	// same id, different kind, different bucket
	dm := snap.Bucket(DirectKey("G1"))
	assert.NotSame(t, b, dm)

	require.NoError(t, b.Insert(newGuildEntry(t, 9, 0)))
	assert.Equal(t, 1, snap.Len())

	var seen []string
	snap.Each(func(key BucketKey, _ *Bucket) { seen = append(seen, key.String()) })
	assert.Equal(t, []string{"guild:G1", "dm:G1"}, seen)
}
