package entity

import (
	"fmt"

	"github.com/diegoclair/meeting-alarm-bot/internal/domain"
)

// OwnerKind tells whether a bucket belongs to a guild or to a single user.
type OwnerKind int

const (
	Guild OwnerKind = iota + 1
	DirectMessage
)

func (k OwnerKind) String() string {
	switch k {
	case Guild:
		return "guild"
	case DirectMessage:
		return "dm"
	default:
		return fmt.Sprintf("OwnerKind(%d)", int(k))
	}
}

// BucketKey identifies one owner's schedule. OwnerID is the guild id for Guild
// buckets and the user id for DirectMessage buckets.
type BucketKey struct {
	Kind    OwnerKind
	OwnerID string
}

func GuildKey(guildID string) BucketKey {
	return BucketKey{Kind: Guild, OwnerID: guildID}
}

func DirectKey(userID string) BucketKey {
	return BucketKey{Kind: DirectMessage, OwnerID: userID}
}

func (k BucketKey) String() string {
	return k.Kind.String() + ":" + k.OwnerID
}

// Owner is the context a command was issued from.
type Owner struct {
	Key       BucketKey
	ChannelID string // where guild entries get delivered
	AuthorID  string
}

// Entry is one recurring daily alarm.
type Entry struct {
	Hour      int
	Minute    int
	LastFired int64 // epoch seconds, 0 when never fired

	Kind          OwnerKind
	GuildID       string // empty for DirectMessage entries
	DestinationID string // channel id for Guild, user id for DirectMessage
	AuthorID      string
}

// NewEntry validates every field before building an Entry.
func NewEntry(kind OwnerKind, hour, minute int, guildID, destinationID, authorID string) (*Entry, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("%w: %d:%d", domain.ErrInvalidTimeFormat, hour, minute)
	}

	switch kind {
	case Guild:
		if guildID == "" {
			return nil, fmt.Errorf("%w: guild entry without guild id", domain.ErrInvalidEntry)
		}
	case DirectMessage:
	default:
		return nil, fmt.Errorf("%w: unknown owner kind %d", domain.ErrInvalidEntry, int(kind))
	}

	if destinationID == "" {
		return nil, fmt.Errorf("%w: missing destination", domain.ErrInvalidEntry)
	}
	if authorID == "" {
		return nil, fmt.Errorf("%w: missing author", domain.ErrInvalidEntry)
	}

	return &Entry{
		Hour:          hour,
		Minute:        minute,
		Kind:          kind,
		GuildID:       guildID,
		DestinationID: destinationID,
		AuthorID:      authorID,
	}, nil
}

// Time is the canonical "HH:MM" display string, also used as dedup key.
func (e Entry) Time() string {
	return domain.FormatTime(e.Hour, e.Minute)
}

func (e Entry) before(o *Entry) bool {
	if e.Hour != o.Hour {
		return e.Hour < o.Hour
	}
	return e.Minute < o.Minute
}

// Target is a live destination returned by the chat platform.
type Target struct {
	ID   string
	Name string
}
