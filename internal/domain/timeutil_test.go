package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "09:05", FormatTime(9, 5))
	assert.Equal(t, "00:00", FormatTime(0, 0))
	assert.Equal(t, "23:59", FormatTime(23, 59))
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantErr    bool
	}{
		{name: "Should parse padded time", input: "09:30", wantHour: 9, wantMinute: 30},
		{name: "Should parse single digit hour", input: "9:30", wantHour: 9, wantMinute: 30},
		{name: "Should parse midnight", input: "0:00", wantHour: 0, wantMinute: 0},
		{name: "Should parse last minute of day", input: "23:59", wantHour: 23, wantMinute: 59},
		{name: "Should trim spaces", input: " 20:30 ", wantHour: 20, wantMinute: 30},
		{name: "Should reject hour 24", input: "24:00", wantErr: true},
		{name: "Should reject minute 60", input: "12:60", wantErr: true},
		{name: "Should reject single digit minute", input: "12:5", wantErr: true},
		{name: "Should reject missing colon", input: "1230", wantErr: true},
		{name: "Should reject words", input: "noon", wantErr: true},
		{name: "Should reject negative hour", input: "-1:00", wantErr: true},
		{name: "Should reject seconds", input: "12:00:00", wantErr: true},
		{name: "Should reject empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, err := ParseTime(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHour, h)
			assert.Equal(t, tt.wantMinute, m)
		})
	}
}

func TestParseOffset(t *testing.T) {
	for _, s := range []string{"-12", "0", "+9", "9", "12"} {
		_, err := ParseOffset(s)
		assert.NoError(t, err, s)
	}

	for _, s := range []string{"-13", "13", "9.5", "UTC+9", ""} {
		_, err := ParseOffset(s)
		assert.ErrorIs(t, err, ErrInvalidOffset, s)
	}

	offset, err := ParseOffset("-3")
	require.NoError(t, err)
	assert.Equal(t, -3, offset)
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "UTC +9", FormatOffset(9))
	assert.Equal(t, "UTC -3", FormatOffset(-3))
	assert.Equal(t, "UTC +0", FormatOffset(0))
}

func TestLocalTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

	local := LocalTime(now, 9)
	assert.Equal(t, 18, local.Hour())
	assert.Equal(t, 30, local.Minute())

	// crossing midnight backwards lands on the previous day
	local = LocalTime(time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC), -5)
	assert.Equal(t, 21, local.Hour())
	assert.Equal(t, time.Sunday, local.Weekday())
}
