package card_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
	"github.com/MrJamesThe3rd/homebill/internal/card"
)

func month(t *testing.T, s string) billing.Month {
	t.Helper()

	m, err := billing.ParseMonth(s)
	require.NoError(t, err)

	return m
}

func TestService_Get_UnknownBankDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := card.NewMockRepository(ctrl)
	repo.EXPECT().
		GetSetting(gomock.Any(), "unknown").
		Return(nil, card.ErrNotFound)

	svc := card.NewService(repo)

	setting, err := svc.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Equal(t, "unknown", setting.Bank)
	assert.Zero(t, setting.StatementDay)
	assert.Empty(t, setting.IssuedMonths)
}

func TestService_SetStatementDay(t *testing.T) {
	type testCase struct {
		name      string
		day       int
		setupMock func(m *card.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Valid",
			day:  15,
			setupMock: func(m *card.MockRepository) {
				m.EXPECT().
					GetSetting(gomock.Any(), "X").
					Return(card.NewSetting("X"), nil)
				m.EXPECT().
					SaveSetting(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s *card.Setting) error {
						assert.Equal(t, 15, s.StatementDay)
						return nil
					})
			},
		},
		{
			// Zero unsets the day, reverting the card to an unbounded cycle.
			name: "ZeroUnsets",
			day:  0,
			setupMock: func(m *card.MockRepository) {
				m.EXPECT().
					GetSetting(gomock.Any(), "X").
					Return(card.NewSetting("X"), nil)
				m.EXPECT().
					SaveSetting(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:    "OutOfRange",
			day:     32,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := card.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := card.NewService(repo)

			_, err := svc.SetStatementDay(context.Background(), "X", tt.day)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_ToggleIssued_SnapshotsEnteredTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := card.NewMockRepository(ctrl)
	repo.EXPECT().
		GetSetting(gomock.Any(), "X").
		Return(card.NewSetting("X"), nil)
	repo.EXPECT().
		SetIssued(gomock.Any(), "X", "2024-03", true).
		Return(nil)
	repo.EXPECT().
		SetStatementAmount(gomock.Any(), "X", "2024-03", int64(5000)).
		Return(nil)

	svc := card.NewService(repo)

	entered := int64(5000)
	issued, err := svc.ToggleIssued(context.Background(), "X", month(t, "2024-03"), &entered)
	require.NoError(t, err)
	assert.True(t, issued)
}

func TestService_ToggleIssued_WithoutEnteredTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := card.NewMockRepository(ctrl)
	repo.EXPECT().
		GetSetting(gomock.Any(), "X").
		Return(card.NewSetting("X"), nil)
	repo.EXPECT().
		SetIssued(gomock.Any(), "X", "2024-03", true).
		Return(nil)
	// No SetStatementAmount call: nothing to snapshot.

	svc := card.NewService(repo)

	issued, err := svc.ToggleIssued(context.Background(), "X", month(t, "2024-03"), nil)
	require.NoError(t, err)
	assert.True(t, issued)
}

func TestService_ToggleIssued_UncheckRetainsAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	setting := card.NewSetting("X")
	setting.IssuedMonths["2024-03"] = true
	setting.StatementAmounts["2024-03"] = 5000

	repo := card.NewMockRepository(ctrl)
	repo.EXPECT().
		GetSetting(gomock.Any(), "X").
		Return(setting, nil)
	// Unchecking only clears the issued flag; the recorded amount stays.
	repo.EXPECT().
		SetIssued(gomock.Any(), "X", "2024-03", false).
		Return(nil)

	svc := card.NewService(repo)

	entered := int64(9999)
	issued, err := svc.ToggleIssued(context.Background(), "X", month(t, "2024-03"), &entered)
	require.NoError(t, err)
	assert.False(t, issued)
}

func TestService_RecordStatementAmount_RejectsNegative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := card.NewMockRepository(ctrl)
	svc := card.NewService(repo)

	err := svc.RecordStatementAmount(context.Background(), "X", month(t, "2024-03"), -1)
	assert.Error(t, err)
}
