package services

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		loc      *time.Location
		expected time.Time
	}{
		{
			name:     "utc",
			now:      time.Date(2024, time.March, 10, 15, 4, 5, 6, time.UTC),
			loc:      time.UTC,
			expected: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "east of utc already on the next day",
			now:      time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC),
			loc:      time.FixedZone("UTC+8", 8*60*60),
			expected: time.Date(2024, time.March, 10, 16, 0, 0, 0, time.UTC),
		},
		{
			name:     "west of utc still on the previous day",
			now:      time.Date(2024, time.March, 10, 2, 0, 0, 0, time.UTC),
			loc:      time.FixedZone("UTC-5", -5*60*60),
			expected: time.Date(2024, time.March, 9, 5, 0, 0, 0, time.UTC),
		},
		{
			name:     "exactly midnight",
			now:      time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
			loc:      time.UTC,
			expected: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := startOfDay(tt.now, tt.loc)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestStartOfDaySkippedMidnight(t *testing.T) {
	// clocks in Sao Paulo jumped from 00:00 to 01:00 on 2018-11-04
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	now := time.Date(2018, time.November, 4, 12, 0, 0, 0, loc)
	got := startOfDay(now, loc)

	assert.Equal(t, 4, got.Day(), "start of day resolved to %s", got)
	assert.Equal(t, 1, got.Hour())
	assert.True(t, time.Date(2018, time.November, 4, 3, 0, 0, 0, time.UTC).Equal(got), "got %s", got)

	// the last hour of the previous day is excluded
	assert.True(t, got.Add(-time.Second).Day() == 3)
}

func TestStartOfDayRepeatedHour(t *testing.T) {
	// DST ended on 2019-02-17 at 00:00, midnight happens only once
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	got := startOfDay(time.Date(2019, time.February, 17, 12, 0, 0, 0, loc), loc)
	assert.Equal(t, 17, got.Day())
	assert.Equal(t, 0, got.Hour())
}
