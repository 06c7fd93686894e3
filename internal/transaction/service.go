package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	CreateTransactions(ctx context.Context, txs []*Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	UpdateReconciliation(ctx context.Context, id uuid.UUID, reconciled bool, at *time.Time) error

	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	Date          time.Time
	Amount        int64
	PaymentMethod PaymentMethod
	CardBank      string
	Category      string
	Description   string

	IsRecurring      bool
	IsInstallment    bool
	RecurringGroupID *uuid.UUID

	InstallmentPeriod int
	InstallmentTotal  int
}

type ListFilter struct {
	CardBank      *string
	PaymentMethod *PaymentMethod
	Reconciled    *bool
	StartDate     *time.Time
	EndDate       *time.Time
}

// Validate checks that a draft conforms to the transaction shape before it is
// accepted, regardless of whether it came from manual entry, a CSV import, or
// an OCR suggestion. Cash drafts are normalized to the no-card sentinel.
func (p *CreateParams) Validate() error {
	if p.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidDraft)
	}

	if p.Amount < 0 {
		return fmt.Errorf("%w: negative amount", ErrInvalidDraft)
	}

	switch p.PaymentMethod {
	case PaymentCash:
		p.CardBank = NoCardBank
	case PaymentCreditCard:
		if p.CardBank == "" || p.CardBank == NoCardBank {
			return fmt.Errorf("%w: credit card transaction without a card bank", ErrInvalidDraft)
		}
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidDraft, p.PaymentMethod)
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	tx := paramsToTransaction(params)
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// CreateBatch persists a series of already-validated drafts in one shot. It is
// the write path for recurring and installment series generation.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	txs := make([]*Transaction, len(params))

	for i := range params {
		if err := params[i].Validate(); err != nil {
			return nil, err
		}

		txs[i] = paramsToTransaction(params[i])
	}

	if err := s.repo.CreateTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Update(ctx context.Context, tx *Transaction) error {
	return s.repo.UpdateTransaction(ctx, tx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// ToggleReconcile flips the reconciliation flag of a transaction. Reconciling
// stamps the reconciliation time; reverting clears it. Toggling twice restores
// the flag with no other side effects; date, bank and amount never change.
func (s *Service) ToggleReconcile(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	tx.IsReconciled = !tx.IsReconciled

	if tx.IsReconciled {
		at := s.now()
		tx.ReconciledAt = &at
	} else {
		tx.ReconciledAt = nil
	}

	if err := s.repo.UpdateReconciliation(ctx, tx.ID, tx.IsReconciled, tx.ReconciledAt); err != nil {
		return nil, fmt.Errorf("update reconciliation: %w", err)
	}

	return tx, nil
}

func paramsToTransaction(p CreateParams) *Transaction {
	return &Transaction{
		Date:              p.Date,
		Amount:            p.Amount,
		PaymentMethod:     p.PaymentMethod,
		CardBank:          p.CardBank,
		Category:          p.Category,
		Description:       p.Description,
		IsRecurring:       p.IsRecurring,
		IsInstallment:     p.IsInstallment,
		RecurringGroupID:  p.RecurringGroupID,
		InstallmentPeriod: p.InstallmentPeriod,
		InstallmentTotal:  p.InstallmentTotal,
	}
}
