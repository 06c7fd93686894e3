package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// PaymentMethod represents how a transaction was paid.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
)

// NoCardBank is the sentinel bank value for transactions not charged to a
// card. Cash transactions always carry it and never enter cycle logic.
const NoCardBank = "-"

var (
	ErrNotFound     = errors.New("transaction not found")
	ErrInvalidDraft = errors.New("invalid transaction draft")
)

// Transaction represents a single household expense.
type Transaction struct {
	ID            uuid.UUID
	Date          time.Time // posting date, normalized to midnight UTC
	Amount        int64     // Amount in cents
	PaymentMethod PaymentMethod
	CardBank      string
	Category      string
	Description   string

	IsReconciled bool
	ReconciledAt *time.Time

	IsRecurring      bool
	IsInstallment    bool
	RecurringGroupID *uuid.UUID

	// Installment periods are first-class fields; the "name (k/n)" description
	// suffix is display-only and only parsed as a fallback for legacy imports.
	InstallmentPeriod int // 1-based, 0 when not an installment
	InstallmentTotal  int

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
