package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

type response struct {
	ID            uuid.UUID  `json:"id"`
	Date          string     `json:"date"`
	Amount        int64      `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	CardBank      string     `json:"card_bank"`
	Category      string     `json:"category,omitempty"`
	Description   string     `json:"description,omitempty"`
	IsReconciled  bool       `json:"is_reconciled"`
	ReconciledAt  *time.Time `json:"reconciled_at,omitempty"`

	IsRecurring      bool       `json:"is_recurring,omitempty"`
	IsInstallment    bool       `json:"is_installment,omitempty"`
	RecurringGroupID *uuid.UUID `json:"recurring_group_id,omitempty"`

	InstallmentPeriod int `json:"installment_period,omitempty"`
	InstallmentTotal  int `json:"installment_total,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) response {
	return response{
		ID:                tx.ID,
		Date:              tx.Date.Format(time.DateOnly),
		Amount:            tx.Amount,
		PaymentMethod:     string(tx.PaymentMethod),
		CardBank:          tx.CardBank,
		Category:          tx.Category,
		Description:       tx.Description,
		IsReconciled:      tx.IsReconciled,
		ReconciledAt:      tx.ReconciledAt,
		IsRecurring:       tx.IsRecurring,
		IsInstallment:     tx.IsInstallment,
		RecurringGroupID:  tx.RecurringGroupID,
		InstallmentPeriod: tx.InstallmentPeriod,
		InstallmentTotal:  tx.InstallmentTotal,
		CreatedAt:         tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []response {
	out := make([]response, len(txs))
	for i, tx := range txs {
		out[i] = toResponse(tx)
	}

	return out
}
