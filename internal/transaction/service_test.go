package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    transaction.CreateParams
		setupMock func(m *transaction.MockRepository)
		wantBank  string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "CreditCardTransaction",
			params: transaction.CreateParams{
				Date:          time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
				Amount:        2500,
				PaymentMethod: transaction.PaymentCreditCard,
				CardBank:      "X",
				Category:      "food",
				Description:   "dinner",
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
			wantBank: "X",
		},
		{
			// Cash drafts are normalized to the no-card sentinel regardless
			// of what the caller passed.
			name: "CashNormalizesCardBank",
			params: transaction.CreateParams{
				Date:          time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
				Amount:        500,
				PaymentMethod: transaction.PaymentCash,
				CardBank:      "X",
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantBank: transaction.NoCardBank,
		},
		{
			name: "MissingDate",
			params: transaction.CreateParams{
				Amount:        500,
				PaymentMethod: transaction.PaymentCash,
			},
			wantErr: true,
		},
		{
			name: "NegativeAmount",
			params: transaction.CreateParams{
				Date:          time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
				Amount:        -1,
				PaymentMethod: transaction.PaymentCash,
			},
			wantErr: true,
		},
		{
			name: "CreditCardWithoutBank",
			params: transaction.CreateParams{
				Date:          time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
				Amount:        500,
				PaymentMethod: transaction.PaymentCreditCard,
				CardBank:      transaction.NoCardBank,
			},
			wantErr: true,
		},
		{
			name: "UnknownPaymentMethod",
			params: transaction.CreateParams{
				Date:          time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
				Amount:        500,
				PaymentMethod: "cheque",
			},
			wantErr: true,
		},
		{
			name: "RepoError",
			params: transaction.CreateParams{
				Date:          time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
				Amount:        500,
				PaymentMethod: transaction.PaymentCash,
			},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantBank, got.CardBank)
		})
	}
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateTransactions(gomock.Any(), gomock.Len(2)).
		Return(nil)

	svc := transaction.NewService(repo)

	txs, err := svc.CreateBatch(context.Background(), []transaction.CreateParams{
		{
			Date:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Amount:        100,
			PaymentMethod: transaction.PaymentCash,
		},
		{
			Date:          time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Amount:        100,
			PaymentMethod: transaction.PaymentCash,
		},
	})
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestService_CreateBatch_RejectsInvalidDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	_, err := svc.CreateBatch(context.Background(), []transaction.CreateParams{
		{Amount: 100, PaymentMethod: transaction.PaymentCash},
	})
	assert.ErrorIs(t, err, transaction.ErrInvalidDraft)
}

func TestService_ToggleReconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	// Simulated repo state so a toggle pair round-trips through it.
	state := &transaction.Transaction{
		ID:            id,
		Date:          time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		Amount:        3000,
		PaymentMethod: transaction.PaymentCreditCard,
		CardBank:      "X",
	}

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		GetTransaction(gomock.Any(), id).
		DoAndReturn(func(context.Context, uuid.UUID) (*transaction.Transaction, error) {
			copied := *state
			return &copied, nil
		}).
		Times(2)
	repo.EXPECT().
		UpdateReconciliation(gomock.Any(), id, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, reconciled bool, at *time.Time) error {
			state.IsReconciled = reconciled
			state.ReconciledAt = at
			return nil
		}).
		Times(2)

	svc := transaction.NewService(repo)

	got, err := svc.ToggleReconcile(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, got.IsReconciled)
	require.NotNil(t, got.ReconciledAt)

	// Toggling never touches date, bank or amount.
	assert.Equal(t, int64(3000), got.Amount)
	assert.Equal(t, "X", got.CardBank)
	assert.Equal(t, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), got.Date)

	// The second toggle restores the pre-call state.
	got, err = svc.ToggleReconcile(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, got.IsReconciled)
	assert.Nil(t, got.ReconciledAt)
}

func TestService_ToggleReconcile_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	repo.EXPECT().
		GetTransaction(gomock.Any(), gomock.Any()).
		Return(nil, transaction.ErrNotFound)

	svc := transaction.NewService(repo)

	_, err := svc.ToggleReconcile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, transaction.ErrNotFound)
}
