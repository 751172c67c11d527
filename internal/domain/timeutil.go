package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatTime turns hours and minutes into "HH:MM" on a 24h clock.
func FormatTime(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ParseTime parses "H:MM" or "HH:MM".
func ParseTime(s string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[1]) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: hour in %q", ErrInvalidTimeFormat, s)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: minute in %q", ErrInvalidTimeFormat, s)
	}

	return hour, minute, nil
}

// ValidOffset reports whether offset is a supported whole-hour UTC offset.
func ValidOffset(offset int) bool {
	return offset >= MinUTCOffset && offset <= MaxUTCOffset
}

// ParseOffset parses a signed whole-hour offset such as "9", "+9" or "-3".
func ParseOffset(s string) (int, error) {
	offset, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !ValidOffset(offset) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOffset, s)
	}
	return offset, nil
}

// FormatOffset renders an offset as "UTC +9" / "UTC -3".
func FormatOffset(offset int) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("UTC %s%d", sign, offset)
}

// LocalTime returns the wall clock under the given offset. The result keeps the
// UTC location, only hour/minute/weekday fields are meaningful.
func LocalTime(nowUTC time.Time, offset int) time.Time {
	return nowUTC.UTC().Add(time.Duration(offset) * time.Hour)
}
