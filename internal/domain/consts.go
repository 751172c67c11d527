package domain

import "time"

// Schedule limits and timing
const (
	// ScheduleLimit is the maximum number of entries a single bucket can hold
	ScheduleLimit = 8

	// CooldownSeconds is the minimum gap between two fires of the same entry
	CooldownSeconds = 3600

	// DefaultTickInterval is how often the scheduler scans all buckets
	DefaultTickInterval = 10 * time.Second

	MinUTCOffset = -12
	MaxUTCOffset = 12
)

// SnapshotVersion is the schema version written to and expected from snapshots
const SnapshotVersion = "1.0"

// Notification templates. The guild one takes the everyone mention first,
// both take the fired HH:MM time.
const (
	GuildNotificationFormat  = "Hey, %s! It's time - %s!"
	DirectNotificationFormat = "Here's your reminder for %s."
)

// DirectMessageName is shown in listings for entries delivered by DM
const DirectMessageName = "direct message"
