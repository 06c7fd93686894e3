package billing

import "time"

// Cycle is the contiguous date range a single statement covers, inclusive on
// both ends. Dates are midnight UTC.
type Cycle struct {
	Start time.Time
	End   time.Time
}

// CycleRange computes the billing cycle that closes in month m for a card
// whose statement closes on statementDay. ok is false when the statement day
// is unset (zero); callers must then treat the cycle as unbounded and every
// unreconciled card transaction as a candidate.
//
// The cycle ends on the statement day of the selected month and starts one
// day after the previous month's statement day, so consecutive cycles are
// contiguous and non-overlapping. Statement days past the end of a month roll
// over per time.Date semantics (day 31 in April resolves to May 1); no
// clamping is applied, which keeps contiguity across every month length.
//
// A card's next-month flag never shifts this arithmetic; the flag is
// informational only, so every consumer agrees on which month a statement
// amount is keyed under.
func CycleRange(statementDay int, m Month) (Cycle, bool) {
	if statementDay <= 0 {
		return Cycle{}, false
	}

	end := time.Date(m.Year, m.Month, statementDay, 0, 0, 0, 0, time.UTC)
	start := time.Date(m.Year, m.Month-1, statementDay+1, 0, 0, 0, 0, time.UTC)

	return Cycle{Start: start, End: end}, true
}

// Contains reports whether a date falls inside the cycle, comparing calendar
// days only.
func (c Cycle) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(c.Start) && !d.After(c.End)
}

// DateOnly truncates a timestamp to midnight UTC so that posting dates with a
// time-of-day component compare cleanly against cycle boundaries.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
