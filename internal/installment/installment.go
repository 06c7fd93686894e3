package installment

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

// Legacy description patterns, matched in priority order. Series created by
// this package carry first-class period fields; these exist only so budgets
// imported from older exports still group correctly.
var legacyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.*?)\s*[（(]期(\d+)/(\d+)[)）]\s*$`),
	regexp.MustCompile(`^(.*?)分期(\d+)/(\d+)\s*$`),
	regexp.MustCompile(`^(.*?)\s*[（(](\d+)/(\d+)[)）]\s*$`),
	regexp.MustCompile(`^(.*?)\s*(\d+)/(\d+)\s*$`),
}

// ParseDescription extracts (baseName, currentPeriod, totalPeriods) from a
// legacy installment description suffix. ok is false when no pattern matches.
func ParseDescription(desc string) (base string, current, total int, ok bool) {
	for _, re := range legacyPatterns {
		m := re.FindStringSubmatch(desc)
		if m == nil {
			continue
		}

		current, errCur := strconv.Atoi(m[2])
		total, errTot := strconv.Atoi(m[3])

		if errCur != nil || errTot != nil || current < 1 || total < 1 || current > total {
			continue
		}

		return m[1], current, total, true
	}

	return "", 0, 0, false
}

// periodOf resolves a transaction's installment metadata, preferring the
// first-class fields over legacy description parsing.
func periodOf(tx *transaction.Transaction) (base string, current, total int, ok bool) {
	if tx.InstallmentPeriod > 0 && tx.InstallmentTotal > 0 {
		base, _, _, parsed := ParseDescription(tx.Description)
		if !parsed {
			base = tx.Description
		}

		return base, tx.InstallmentPeriod, tx.InstallmentTotal, true
	}

	// Legacy data: flagged installments and bare "k/n" descriptions alike.
	return ParseDescription(tx.Description)
}

// Group is a reconstructed multi-installment purchase.
type Group struct {
	BaseName         string
	TotalPeriods     int
	PaidPeriods      int
	RemainingPeriods int
	AmountPerPeriod  int64
	Progress         float64
	StartDate        time.Time
	EndMonth         billing.Month
	Transactions     []*transaction.Transaction
}

// Completed reports whether every period has been reconciled.
func (g *Group) Completed() bool {
	return g.PaidPeriods >= g.TotalPeriods
}

// GroupTransactions reconstructs installment groups from a transaction set
// and returns the ongoing ones, ordered by base name. Completed groups are
// excluded.
func GroupTransactions(txs []*transaction.Transaction) []*Group {
	byName := make(map[string]*Group)

	for _, tx := range txs {
		base, _, total, ok := periodOf(tx)
		if !ok {
			continue
		}

		g, exists := byName[base]
		if !exists {
			g = &Group{BaseName: base, TotalPeriods: total}
			byName[base] = g
		}

		g.Transactions = append(g.Transactions, tx)

		if tx.IsReconciled {
			g.PaidPeriods++
		}
	}

	var groups []*Group

	for _, g := range byName {
		sort.Slice(g.Transactions, func(i, j int) bool {
			return g.Transactions[i].Date.Before(g.Transactions[j].Date)
		})

		first := g.Transactions[0]
		g.AmountPerPeriod = first.Amount
		g.StartDate = first.Date
		g.EndMonth = billing.MonthOf(first.Date.AddDate(0, g.TotalPeriods-1, 0))
		g.RemainingPeriods = g.TotalPeriods - g.PaidPeriods
		g.Progress = float64(g.PaidPeriods) / float64(g.TotalPeriods)

		if g.Completed() {
			continue
		}

		groups = append(groups, g)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].BaseName < groups[j].BaseName
	})

	return groups
}

// SplitAmount divides a total into per-period amounts. The integer remainder
// goes entirely to the first period, so the periods always sum exactly to the
// total and no fractional cents are spread around.
func SplitAmount(total int64, periods int) []int64 {
	amounts := make([]int64, periods)
	each := total / int64(periods)

	for i := range amounts {
		amounts[i] = each
	}

	amounts[0] += total % int64(periods)

	return amounts
}

// SeriesParams describes a new installment purchase to generate.
type SeriesParams struct {
	Name        string
	TotalAmount int64
	Periods     int
	StartDate   time.Time
	CardBank    string
	Category    string
}

// PlanSeries expands an installment purchase into one draft per period, each
// dated one calendar month after the previous. Period metadata is carried in
// first-class fields; the numbered description suffix is rendered for display
// only.
func PlanSeries(p SeriesParams) ([]transaction.CreateParams, error) {
	if p.Periods < 1 {
		return nil, fmt.Errorf("installment series needs at least one period")
	}

	if p.TotalAmount < 0 {
		return nil, fmt.Errorf("installment total must be non-negative")
	}

	amounts := SplitAmount(p.TotalAmount, p.Periods)
	drafts := make([]transaction.CreateParams, p.Periods)

	for i := range drafts {
		drafts[i] = transaction.CreateParams{
			Date:              p.StartDate.AddDate(0, i, 0),
			Amount:            amounts[i],
			PaymentMethod:     transaction.PaymentCreditCard,
			CardBank:          p.CardBank,
			Category:          p.Category,
			Description:       fmt.Sprintf("%s (%d/%d)", p.Name, i+1, p.Periods),
			IsInstallment:     true,
			InstallmentPeriod: i + 1,
			InstallmentTotal:  p.Periods,
		}
	}

	return drafts, nil
}

// RecurringParams describes a new recurring expense series to generate.
type RecurringParams struct {
	Name          string
	Amount        int64 // per period
	Periods       int
	StartDate     time.Time
	PaymentMethod transaction.PaymentMethod
	CardBank      string
	Category      string
}

// PlanRecurring expands a recurring expense into monthly sibling drafts
// linked by a shared group ID.
func PlanRecurring(p RecurringParams) ([]transaction.CreateParams, uuid.UUID, error) {
	if p.Periods < 1 {
		return nil, uuid.Nil, fmt.Errorf("recurring series needs at least one period")
	}

	groupID := uuid.New()
	drafts := make([]transaction.CreateParams, p.Periods)

	for i := range drafts {
		drafts[i] = transaction.CreateParams{
			Date:             p.StartDate.AddDate(0, i, 0),
			Amount:           p.Amount,
			PaymentMethod:    p.PaymentMethod,
			CardBank:         p.CardBank,
			Category:         p.Category,
			Description:      p.Name,
			IsRecurring:      true,
			RecurringGroupID: &groupID,
		}
	}

	return drafts, groupID, nil
}
