package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/homebill/internal/importer/household"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

type Service struct {
	household Importer
}

func NewService() *Service {
	return &Service{
		household: household.New(),
	}
}

// Import parses a statement export into transaction drafts. Every draft is
// validated against the transaction shape before being returned, so whatever
// reaches the core already conforms.
func (s *Service) Import(format Format, r io.Reader, method transaction.PaymentMethod, cardBank string) ([]transaction.CreateParams, error) {
	var imp Importer

	switch format {
	case FormatHousehold:
		imp = s.household
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	drafts, err := imp.Parse(r, method, cardBank)
	if err != nil {
		return nil, err
	}

	for i := range drafts {
		if err := drafts[i].Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	return drafts, nil
}
