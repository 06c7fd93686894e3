package budget_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
	"github.com/MrJamesThe3rd/homebill/internal/budget"
)

func month(t *testing.T, s string) billing.Month {
	t.Helper()

	m, err := billing.ParseMonth(s)
	require.NoError(t, err)

	return m
}

func TestProject(t *testing.T) {
	b := &budget.MonthlyBudget{
		OpeningBalance: 10000,
		Incomes: []budget.IncomeEntry{
			{SourceID: "salary", Amount: 300000},
			{SourceID: "side", Amount: 20000},
		},
		Loan: 80000,
	}

	p := budget.Project(b, []int64{45000, 15000})

	assert.Equal(t, int64(320000), p.IncomeTotal)
	assert.Equal(t, int64(140000), p.ExpenseTotal)
	assert.Equal(t, int64(190000), p.Balance)
}

func TestService_Get_LazilyCreatesDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	repo.EXPECT().
		GetBudget(gomock.Any(), "2024-03").
		Return(nil, budget.ErrNotFound)
	repo.EXPECT().
		ListIncomeSources(gomock.Any()).
		Return([]budget.IncomeSource{{ID: "salary", Name: "Salary"}}, nil)
	// No SaveBudget: defaults are not persisted until edited.

	svc := budget.NewService(repo, budget.NewMockCardTotalSource(ctrl))

	b, err := svc.Get(context.Background(), month(t, "2024-03"))
	require.NoError(t, err)
	assert.Equal(t, "2024-03", b.Month.String())
	require.Len(t, b.Incomes, 1)
	assert.Equal(t, "salary", b.Incomes[0].SourceID)
	assert.Zero(t, b.Incomes[0].Amount)
}

func TestService_Update_PersistsFirstEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	repo.EXPECT().
		GetBudget(gomock.Any(), "2024-03").
		Return(nil, budget.ErrNotFound)
	repo.EXPECT().
		ListIncomeSources(gomock.Any()).
		Return(nil, nil)
	repo.EXPECT().
		SaveBudget(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *budget.MonthlyBudget) error {
			assert.Equal(t, int64(80000), b.Loan)
			return nil
		})

	svc := budget.NewService(repo, budget.NewMockCardTotalSource(ctrl))

	loan := int64(80000)
	b, err := svc.Update(context.Background(), month(t, "2024-03"), budget.UpdateParams{Loan: &loan})
	require.NoError(t, err)
	assert.Equal(t, int64(80000), b.Loan)
}

func TestService_ProjectMonth_ManualSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	repo.EXPECT().
		GetBudget(gomock.Any(), "2024-03").
		Return(&budget.MonthlyBudget{
			Month:   month(t, "2024-03"),
			Incomes: []budget.IncomeEntry{{SourceID: "salary", Amount: 300000}},
			Loan:    80000,
			CreditCards: []budget.CardEntry{
				{Name: "X", Amount: 45000},
				{Name: "Y", Amount: 15000},
			},
		}, nil)

	// The aggregator must not be consulted in manual mode.
	totals := budget.NewMockCardTotalSource(ctrl)

	svc := budget.NewService(repo, totals)

	p, err := svc.ProjectMonth(context.Background(), month(t, "2024-03"), budget.SourceManual)
	require.NoError(t, err)
	assert.Equal(t, int64(140000), p.ExpenseTotal)
	assert.Equal(t, int64(160000), p.Balance)
}

func TestService_ProjectMonth_AggregatedSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	repo.EXPECT().
		GetBudget(gomock.Any(), "2024-03").
		Return(&budget.MonthlyBudget{
			Month:   month(t, "2024-03"),
			Incomes: []budget.IncomeEntry{{SourceID: "salary", Amount: 300000}},
			Loan:    80000,
			// Manual entries present but ignored: sources are never mixed.
			CreditCards: []budget.CardEntry{{Name: "X", Amount: 99999}},
		}, nil)

	totals := budget.NewMockCardTotalSource(ctrl)
	totals.EXPECT().
		ReconciledTotals(gomock.Any(), month(t, "2024-03")).
		Return(map[string]int64{"X": 45000, "Y": 15000}, nil)

	svc := budget.NewService(repo, totals)

	p, err := svc.ProjectMonth(context.Background(), month(t, "2024-03"), budget.SourceAggregated)
	require.NoError(t, err)
	assert.Equal(t, int64(140000), p.ExpenseTotal)
	assert.Equal(t, int64(160000), p.Balance)
}

func TestService_ProjectMonth_UnknownSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := budget.NewMockRepository(ctrl)
	repo.EXPECT().
		GetBudget(gomock.Any(), "2024-03").
		Return(&budget.MonthlyBudget{Month: month(t, "2024-03")}, nil)

	svc := budget.NewService(repo, budget.NewMockCardTotalSource(ctrl))

	_, err := svc.ProjectMonth(context.Background(), month(t, "2024-03"), "both")
	assert.Error(t, err)
}
