package billing

import (
	"fmt"
	"time"
)

// Month is a billing-month key (YYYY-MM). It is the unit statement state is
// keyed under: issued months, recorded statement amounts and budgets all use
// its String form.
type Month struct {
	Year  int
	Month time.Month
}

const monthLayout = "2006-01"

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("parse month %q: %w", s, err)
	}

	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the billing month a date falls in.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// AddMonths returns the month n calendar months later, normalizing across
// year boundaries (2024-12 + 1 = 2025-01).
func (m Month) AddMonths(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Next() Month {
	return m.AddMonths(1)
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}
