package reconcile

import (
	"context"
	"fmt"
	"sort"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
	"github.com/MrJamesThe3rd/homebill/internal/card"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=sources_mock.go -package=reconcile

// TransactionSource is the slice of the transaction service the aggregator
// reads from.
type TransactionSource interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

// SettingSource is the slice of the card service the aggregator reads from.
type SettingSource interface {
	Get(ctx context.Context, bank string) (*card.Setting, error)
	List(ctx context.Context) ([]*card.Setting, error)
}

// Service folds the transaction set through the classifier to produce
// per-card reconciliation summaries. It never mutates anything: toggling a
// transaction or issuing a month goes through the owning services, after
// which a summary is simply recomputed.
type Service struct {
	transactions TransactionSource
	settings     SettingSource
}

func NewService(transactions TransactionSource, settings SettingSource) *Service {
	return &Service{transactions: transactions, settings: settings}
}

// Summary is the reconciliation state of one card for one billing month.
type Summary struct {
	Bank  string
	Month billing.Month

	// Cycle is nil when the card has no statement day; candidates are then
	// unbounded.
	Cycle *billing.Cycle

	// Candidates are the CURRENT-bucket transactions, newest first.
	Candidates     []*transaction.Transaction
	CandidateTotal int64

	// ReconciledTotal is the recorded statement amount for the month when one
	// exists, otherwise the sum of reconciled transactions dated inside the
	// cycle.
	ReconciledTotal int64

	EnteredTotal int64
	// Discrepancy compares the entered statement total against the reconciled
	// total, not the candidate total.
	Discrepancy int64
	IsBalanced  bool
	IsIssued    bool
}

// Summarize computes the reconciliation summary for one bank and billing
// month against a user-entered statement total.
func (s *Service) Summarize(ctx context.Context, bank string, month billing.Month, enteredTotal int64) (*Summary, error) {
	setting, err := s.settings.Get(ctx, bank)
	if err != nil {
		return nil, fmt.Errorf("load card setting: %w", err)
	}

	txs, err := s.transactions.List(ctx, transaction.ListFilter{CardBank: &bank})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	cycle, hasCycle := billing.CycleRange(setting.StatementDay, month)

	summary := &Summary{
		Bank:         bank,
		Month:        month,
		EnteredTotal: enteredTotal,
		IsIssued:     setting.IsIssued(month.String()),
	}

	if hasCycle {
		summary.Cycle = &cycle
	}

	var reconciledInCycle int64

	for _, tx := range txs {
		switch billing.Classify(tx, bank, cycle, hasCycle) {
		case billing.BucketCurrent:
			summary.Candidates = append(summary.Candidates, tx)
			summary.CandidateTotal += tx.Amount
		case billing.BucketReconciled:
			if !hasCycle || cycle.Contains(tx.Date) {
				reconciledInCycle += tx.Amount
			}
		case billing.BucketFuture, billing.BucketExcluded:
		}
	}

	sort.SliceStable(summary.Candidates, func(i, j int) bool {
		return summary.Candidates[i].Date.After(summary.Candidates[j].Date)
	})

	// A recorded statement amount is authoritative; the computed sum is only
	// a fallback for months never finalized.
	if amount, ok := setting.StatementAmount(month.String()); ok {
		summary.ReconciledTotal = amount
	} else {
		summary.ReconciledTotal = reconciledInCycle
	}

	summary.Discrepancy = enteredTotal - summary.ReconciledTotal
	summary.IsBalanced = abs(summary.Discrepancy) < 1 && enteredTotal > 0

	return summary, nil
}

// CardSummary is the all-time unbilled/billed aggregate for one card, used by
// overview dashboards. It is unwindowed on purpose and must not be confused
// with the cycle-bound reconciled total in Summary.
type CardSummary struct {
	Bank     string
	Unbilled int64
	Billed   int64
}

// CardSummaries computes the dashboard aggregate for every configured bank.
func (s *Service) CardSummaries(ctx context.Context) ([]CardSummary, error) {
	settings, err := s.settings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list card settings: %w", err)
	}

	method := transaction.PaymentCreditCard

	txs, err := s.transactions.List(ctx, transaction.ListFilter{PaymentMethod: &method})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	byBank := make(map[string]*CardSummary, len(settings))
	summaries := make([]CardSummary, len(settings))

	for i, setting := range settings {
		summaries[i] = CardSummary{Bank: setting.Bank}
		byBank[setting.Bank] = &summaries[i]
	}

	for _, tx := range txs {
		summary, ok := byBank[tx.CardBank]
		if !ok {
			continue
		}

		if tx.IsReconciled {
			summary.Billed += tx.Amount
		} else {
			summary.Unbilled += tx.Amount
		}
	}

	return summaries, nil
}

// ReconciledTotals returns each configured card's cycle-bound reconciled
// total for the given billing month, keyed by bank. It is the aggregated
// card-amount source for budget projection, and uses the exact same cycle
// definition as Summarize.
func (s *Service) ReconciledTotals(ctx context.Context, month billing.Month) (map[string]int64, error) {
	settings, err := s.settings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list card settings: %w", err)
	}

	totals := make(map[string]int64, len(settings))

	for _, setting := range settings {
		summary, err := s.Summarize(ctx, setting.Bank, month, 0)
		if err != nil {
			return nil, err
		}

		totals[setting.Bank] = summary.ReconciledTotal
	}

	return totals, nil
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
