package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

func cardTx(bank string, d time.Time, reconciled bool) *transaction.Transaction {
	return &transaction.Transaction{
		Date:          d,
		Amount:        1000,
		PaymentMethod: transaction.PaymentCreditCard,
		CardBank:      bank,
		IsReconciled:  reconciled,
	}
}

func TestClassify(t *testing.T) {
	m, err := billing.ParseMonth("2024-03")
	require.NoError(t, err)

	cycle, ok := billing.CycleRange(15, m)
	require.True(t, ok)

	type testCase struct {
		name string
		tx   *transaction.Transaction
		want billing.Bucket
	}

	tests := []testCase{
		{
			name: "InCycleUnreconciled",
			tx:   cardTx("X", date(2024, time.February, 20), false),
			want: billing.BucketCurrent,
		},
		{
			name: "OnCycleEnd",
			tx:   cardTx("X", date(2024, time.March, 15), false),
			want: billing.BucketCurrent,
		},
		{
			name: "AfterCycleEnd",
			tx:   cardTx("X", date(2024, time.March, 20), false),
			want: billing.BucketFuture,
		},
		{
			// Carry-forward: stragglers from before the cycle start stay on
			// the current bill until reconciled.
			name: "BeforeCycleStartUnreconciled",
			tx:   cardTx("X", date(2024, time.January, 2), false),
			want: billing.BucketCurrent,
		},
		{
			name: "Reconciled",
			tx:   cardTx("X", date(2024, time.February, 20), true),
			want: billing.BucketReconciled,
		},
		{
			name: "ReconciledBeatsFutureDate",
			tx:   cardTx("X", date(2024, time.April, 2), true),
			want: billing.BucketReconciled,
		},
		{
			name: "OtherBank",
			tx:   cardTx("Y", date(2024, time.February, 20), false),
			want: billing.BucketExcluded,
		},
		{
			name: "Cash",
			tx: &transaction.Transaction{
				Date:          date(2024, time.February, 20),
				PaymentMethod: transaction.PaymentCash,
				CardBank:      transaction.NoCardBank,
			},
			want: billing.BucketExcluded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := billing.Classify(tt.tx, "X", cycle, true)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_NoCycle(t *testing.T) {
	// Without a statement day there is no windowing: everything unreconciled
	// on the card is part of the current bill, no matter how far out.
	tx := cardTx("X", date(2030, time.December, 31), false)
	assert.Equal(t, billing.BucketCurrent, billing.Classify(tx, "X", billing.Cycle{}, false))

	tx.IsReconciled = true
	assert.Equal(t, billing.BucketReconciled, billing.Classify(tx, "X", billing.Cycle{}, false))
}

func TestClassify_CarryForwardAcrossCycles(t *testing.T) {
	// An unreconciled transaction dated in month M-2 stays CURRENT for month
	// M and flips straight to RECONCILED (never FUTURE) once toggled.
	tx := cardTx("X", date(2024, time.January, 5), false)

	m, err := billing.ParseMonth("2024-03")
	require.NoError(t, err)

	cycle, ok := billing.CycleRange(15, m)
	require.True(t, ok)

	assert.Equal(t, billing.BucketCurrent, billing.Classify(tx, "X", cycle, true))

	tx.IsReconciled = true
	assert.Equal(t, billing.BucketReconciled, billing.Classify(tx, "X", cycle, true))
}
