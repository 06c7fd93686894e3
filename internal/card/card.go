package card

import "errors"

var ErrNotFound = errors.New("card setting not found")

// Setting holds the statement configuration and statement state of one card,
// keyed by its bank identifier.
type Setting struct {
	Bank string

	// StatementDay is the day-of-month the statement closes, 1-31. Zero means
	// unset: the card has no billing cycle and every unreconciled transaction
	// is a candidate.
	StatementDay int

	// IsNextMonth records that this bank's real-world close date nominally
	// refers to the prior spending month. It is informational only and never
	// shifts cycle arithmetic; recorded statement amounts are keyed under the
	// unshifted billing month.
	IsNextMonth bool

	// IssuedMonths and StatementAmounts are independent: a month can carry a
	// recorded amount without being issued, and vice versa.
	IssuedMonths     map[string]bool  // billing-month key -> finalized
	StatementAmounts map[string]int64 // billing-month key -> statement total in cents
}

// NewSetting returns an empty setting for a bank, the default shape used when
// a bank has no stored configuration yet.
func NewSetting(bank string) *Setting {
	return &Setting{
		Bank:             bank,
		IssuedMonths:     make(map[string]bool),
		StatementAmounts: make(map[string]int64),
	}
}

func (s *Setting) IsIssued(month string) bool {
	return s.IssuedMonths[month]
}

// StatementAmount returns the recorded statement total for a month, if any.
func (s *Setting) StatementAmount(month string) (int64, bool) {
	amount, ok := s.StatementAmounts[month]
	return amount, ok
}
