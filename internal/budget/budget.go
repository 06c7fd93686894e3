package budget

import (
	"errors"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
)

var ErrNotFound = errors.New("budget not found")

// IncomeSource is a configured household income stream (salary, allowance).
// Sources seed the income entries of a freshly created monthly budget.
type IncomeSource struct {
	ID   string
	Name string
}

type IncomeEntry struct {
	SourceID string
	Amount   int64
}

// CardEntry is a manually entered per-card amount, used when automatic
// aggregation is not the authoritative source for a screen.
type CardEntry struct {
	Name   string
	Amount int64
}

// MonthlyBudget is the cash-flow record of one month. It is created lazily on
// first access and persisted only once the user edits a field.
type MonthlyBudget struct {
	Month          billing.Month
	OpeningBalance int64
	Incomes        []IncomeEntry
	Loan           int64
	CreditCards    []CardEntry
}

// NewMonthlyBudget returns the default budget for a month: zero values with
// one income entry per configured source.
func NewMonthlyBudget(month billing.Month, sources []IncomeSource) *MonthlyBudget {
	b := &MonthlyBudget{Month: month}

	for _, src := range sources {
		b.Incomes = append(b.Incomes, IncomeEntry{SourceID: src.ID})
	}

	return b
}

// Projection is the computed cash-flow balance of one month.
type Projection struct {
	IncomeTotal  int64
	ExpenseTotal int64
	Balance      int64
}

// Project computes the month's balance from its budget record and the chosen
// per-card amounts. Callers pick exactly one card-amount source (manual
// entries or aggregated cycle totals); mixing both within a month is what
// this signature exists to prevent.
func Project(b *MonthlyBudget, cardAmounts []int64) Projection {
	var p Projection

	for _, income := range b.Incomes {
		p.IncomeTotal += income.Amount
	}

	p.ExpenseTotal = b.Loan
	for _, amount := range cardAmounts {
		p.ExpenseTotal += amount
	}

	p.Balance = b.OpeningBalance + p.IncomeTotal - p.ExpenseTotal

	return p
}
