package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Snapshot is the persisted JSON document.
type Snapshot struct {
	Version       string            `json:"version"`
	ScheduleGuild map[string]Bucket `json:"schedule_guild"`
	ScheduleDM    map[string]Bucket `json:"schedule_dm"`
}

type Bucket struct {
	Entries   []Entry `json:"entries"`
	UTCOffset *int    `json:"utc_offset"`
}

type Entry struct {
	Time      string    `json:"time"` // informational, recomputed on load
	Hour      int       `json:"hour"`
	Minute    int       `json:"minute"`
	Fired     EpochTime `json:"fired"`
	GuildID   ID        `json:"guild_id"`
	ChannelID ID        `json:"channel_id"`
	AuthorID  ID        `json:"author_id"`
}

// ID is a platform identifier. Older snapshots stored Discord snowflakes as
// JSON numbers, so both numbers and strings are accepted. Empty encodes as null.
type ID string

func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("id must be a string or a number: %w", err)
		}
		if _, err := strconv.ParseUint(n.String(), 10, 64); err != nil {
			return fmt.Errorf("id %s is not an unsigned integer", n)
		}
		*id = ID(n.String())
		return nil
	}
}

// EpochTime is seconds since the epoch. Fractional values are truncated.
type EpochTime int64

func (t *EpochTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = 0
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("fired must be a number: %w", err)
	}
	if f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("fired out of range: %v", f)
	}
	*t = EpochTime(f)
	return nil
}
