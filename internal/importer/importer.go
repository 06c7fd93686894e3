package importer

import (
	"io"

	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

// Format identifies a supported statement export layout.
type Format string

const (
	// FormatHousehold is the generic CSV layout with date/amount/description
	// columns under Chinese or English headers.
	FormatHousehold Format = "household"
)

// Importer parses a statement export into drafts for one account; the CSV
// itself rarely says which card it belongs to, so the caller supplies the
// payment method and bank.
type Importer interface {
	Parse(r io.Reader, method transaction.PaymentMethod, cardBank string) ([]transaction.CreateParams, error)
}
