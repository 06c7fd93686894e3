package budget

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=budget
type Repository interface {
	GetBudget(ctx context.Context, month string) (*MonthlyBudget, error)
	SaveBudget(ctx context.Context, b *MonthlyBudget) error
	ListBudgets(ctx context.Context) ([]*MonthlyBudget, error)
	ListIncomeSources(ctx context.Context) ([]IncomeSource, error)
}

// CardTotalSource supplies per-card cycle-bound reconciled totals for a
// billing month. It is satisfied by the reconcile service, so budget and
// dashboard agree on the same cycle definition by construction.
type CardTotalSource interface {
	ReconciledTotals(ctx context.Context, month billing.Month) (map[string]int64, error)
}

// AmountSource selects where a projection's per-card amounts come from.
// Exactly one source is used per call.
type AmountSource string

const (
	SourceManual     AmountSource = "manual"
	SourceAggregated AmountSource = "aggregated"
)

type Service struct {
	repo       Repository
	cardTotals CardTotalSource
}

func NewService(repo Repository, cardTotals CardTotalSource) *Service {
	return &Service{repo: repo, cardTotals: cardTotals}
}

// Get returns the budget for a month, lazily constructing the default record
// when none is stored yet. The default is not persisted; that happens on the
// first edit.
func (s *Service) Get(ctx context.Context, month billing.Month) (*MonthlyBudget, error) {
	b, err := s.repo.GetBudget(ctx, month.String())
	if err == nil {
		return b, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("get budget: %w", err)
	}

	sources, err := s.repo.ListIncomeSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("list income sources: %w", err)
	}

	return NewMonthlyBudget(month, sources), nil
}

func (s *Service) List(ctx context.Context) ([]*MonthlyBudget, error) {
	return s.repo.ListBudgets(ctx)
}

func (s *Service) IncomeSources(ctx context.Context) ([]IncomeSource, error) {
	return s.repo.ListIncomeSources(ctx)
}

type UpdateParams struct {
	OpeningBalance *int64
	Loan           *int64
	Incomes        []IncomeEntry
	CreditCards    []CardEntry
}

// Update applies a partial edit to a month's budget and persists it, creating
// the record if this is the first edit.
func (s *Service) Update(ctx context.Context, month billing.Month, params UpdateParams) (*MonthlyBudget, error) {
	b, err := s.Get(ctx, month)
	if err != nil {
		return nil, err
	}

	if params.OpeningBalance != nil {
		b.OpeningBalance = *params.OpeningBalance
	}

	if params.Loan != nil {
		b.Loan = *params.Loan
	}

	if params.Incomes != nil {
		b.Incomes = params.Incomes
	}

	if params.CreditCards != nil {
		b.CreditCards = params.CreditCards
	}

	if err := s.repo.SaveBudget(ctx, b); err != nil {
		return nil, fmt.Errorf("save budget: %w", err)
	}

	return b, nil
}

// ProjectMonth computes the cash-flow projection for a month using the given
// card-amount source.
func (s *Service) ProjectMonth(ctx context.Context, month billing.Month, source AmountSource) (Projection, error) {
	b, err := s.Get(ctx, month)
	if err != nil {
		return Projection{}, err
	}

	var cardAmounts []int64

	switch source {
	case SourceManual:
		for _, entry := range b.CreditCards {
			cardAmounts = append(cardAmounts, entry.Amount)
		}
	case SourceAggregated:
		totals, err := s.cardTotals.ReconciledTotals(ctx, month)
		if err != nil {
			return Projection{}, fmt.Errorf("aggregate card totals: %w", err)
		}

		banks := make([]string, 0, len(totals))
		for bank := range totals {
			banks = append(banks, bank)
		}

		sort.Strings(banks)

		for _, bank := range banks {
			cardAmounts = append(cardAmounts, totals[bank])
		}
	default:
		return Projection{}, fmt.Errorf("unknown amount source %q", source)
	}

	return Project(b, cardAmounts), nil
}
