package domain

import "errors"

// User-input errors, recovered at the command boundary
var (
	ErrScheduleFull      = errors.New("schedule is full")
	ErrDuplicateTime     = errors.New("an entry already exists at that time")
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidIndex      = errors.New("invalid entry index")
	ErrInvalidOffset     = errors.New("invalid utc offset")
	ErrEmptySchedule     = errors.New("schedule is empty")
	ErrUnknownCommand    = errors.New("unknown command")
)

// Runtime errors
var (
	ErrInvalidEntry        = errors.New("invalid entry")
	ErrEntryNotFound       = errors.New("entry not found")
	ErrDestinationNotFound = errors.New("destination not found")
	ErrPersistenceCorrupt  = errors.New("snapshot is corrupt")
	ErrSchemaMismatch      = errors.New("snapshot schema version mismatch")
)
