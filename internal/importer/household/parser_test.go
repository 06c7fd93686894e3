package household_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/homebill/internal/importer/household"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

func TestParser_Parse(t *testing.T) {
	input := strings.Join([]string{
		"信用卡帳戶,1234-5678",
		"日期,金額,說明,類別",
		"2024-03-05,\"1,200\",晚餐,food",
		"2024/03/06,85.50,咖啡,food",
		"合計,,,",
	}, "\n")

	p := household.New()

	drafts, err := p.Parse(strings.NewReader(input), transaction.PaymentCreditCard, "X")
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC), drafts[0].Date)
	assert.Equal(t, int64(120000), drafts[0].Amount)
	assert.Equal(t, "晚餐", drafts[0].Description)
	assert.Equal(t, "food", drafts[0].Category)
	assert.Equal(t, "X", drafts[0].CardBank)
	assert.Equal(t, transaction.PaymentCreditCard, drafts[0].PaymentMethod)

	assert.Equal(t, int64(8550), drafts[1].Amount)
}

func TestParser_Parse_EnglishHeaders(t *testing.T) {
	input := strings.Join([]string{
		"Date,Amount,Description",
		"2024-03-05,-42.00,refunded charge",
	}, "\n")

	p := household.New()

	drafts, err := p.Parse(strings.NewReader(input), transaction.PaymentCash, transaction.NoCardBank)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	// Signed exports are normalized to magnitudes.
	assert.Equal(t, int64(4200), drafts[0].Amount)
}

func TestParser_Parse_NoHeader(t *testing.T) {
	p := household.New()

	_, err := p.Parse(strings.NewReader("just,some,cells\n1,2,3\n"), transaction.PaymentCash, transaction.NoCardBank)
	assert.Error(t, err)
}
