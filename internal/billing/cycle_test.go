package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCycleRange(t *testing.T) {
	type testCase struct {
		name      string
		day       int
		month     string
		wantOK    bool
		wantStart time.Time
		wantEnd   time.Time
	}

	tests := []testCase{
		{
			name:      "MidMonthStatementDay",
			day:       15,
			month:     "2024-03",
			wantOK:    true,
			wantStart: date(2024, time.February, 16),
			wantEnd:   date(2024, time.March, 15),
		},
		{
			name:      "JanuaryCycleCrossesYearBoundary",
			day:       10,
			month:     "2024-01",
			wantOK:    true,
			wantStart: date(2023, time.December, 11),
			wantEnd:   date(2024, time.January, 10),
		},
		{
			name:   "Day31RollsOverInShortMonth",
			day:    31,
			month:  "2024-04",
			wantOK: true,
			// April has 30 days: day 31 rolls to May 1, day 32 of March rolls
			// to April 1. No clamping.
			wantStart: date(2024, time.April, 1),
			wantEnd:   date(2024, time.May, 1),
		},
		{
			name:   "UnsetStatementDay",
			day:    0,
			month:  "2024-03",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := billing.ParseMonth(tt.month)
			require.NoError(t, err)

			cycle, ok := billing.CycleRange(tt.day, m)
			assert.Equal(t, tt.wantOK, ok)

			if !tt.wantOK {
				return
			}

			assert.Equal(t, tt.wantStart, cycle.Start)
			assert.Equal(t, tt.wantEnd, cycle.End)
		})
	}
}

func TestCycleRange_Contiguity(t *testing.T) {
	// Consecutive cycles must tile the calendar exactly: cycle M ends the day
	// before cycle M+1 starts, for every statement day, across year edges.
	for _, day := range []int{1, 15, 28, 30, 31} {
		m, err := billing.ParseMonth("2023-11")
		require.NoError(t, err)

		for i := 0; i < 15; i++ {
			current, ok := billing.CycleRange(day, m)
			require.True(t, ok)

			next, ok := billing.CycleRange(day, m.Next())
			require.True(t, ok)

			assert.Equal(t, current.End.AddDate(0, 0, 1), next.Start,
				"day %d, month %s", day, m)

			m = m.Next()
		}
	}
}

func TestCycle_Contains(t *testing.T) {
	m, err := billing.ParseMonth("2024-03")
	require.NoError(t, err)

	cycle, ok := billing.CycleRange(15, m)
	require.True(t, ok)

	assert.True(t, cycle.Contains(date(2024, time.February, 16)))
	assert.True(t, cycle.Contains(date(2024, time.March, 15)))
	assert.True(t, cycle.Contains(time.Date(2024, time.March, 15, 18, 30, 0, 0, time.UTC)))
	assert.False(t, cycle.Contains(date(2024, time.February, 15)))
	assert.False(t, cycle.Contains(date(2024, time.March, 16)))
}

func TestMonth_AddMonths(t *testing.T) {
	m, err := billing.ParseMonth("2024-12")
	require.NoError(t, err)

	assert.Equal(t, "2025-01", m.Next().String())
	assert.Equal(t, "2025-11", m.AddMonths(11).String())
	assert.Equal(t, "2024-01", m.AddMonths(-11).String())
}
