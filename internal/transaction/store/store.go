package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectColumns = `
	id, date, amount, payment_method, card_bank, category, description,
	is_reconciled, reconciled_at, is_recurring, is_installment,
	recurring_group_id, installment_period, installment_total,
	created_at, updated_at, deleted_at
`

// scanTransaction reads one transaction row in selectColumns order.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var method string

	var groupID *uuid.UUID

	if err := s.Scan(
		&tx.ID, &tx.Date, &tx.Amount, &method, &tx.CardBank, &tx.Category, &tx.Description,
		&tx.IsReconciled, &tx.ReconciledAt, &tx.IsRecurring, &tx.IsInstallment,
		&groupID, &tx.InstallmentPeriod, &tx.InstallmentTotal,
		&tx.CreatedAt, &tx.UpdatedAt, &tx.DeletedAt,
	); err != nil {
		return nil, err
	}

	tx.PaymentMethod = transaction.PaymentMethod(method)
	tx.RecurringGroupID = groupID

	return &tx, nil
}

const insertQuery = `
	INSERT INTO transactions (
		date, amount, payment_method, card_bank, category, description,
		is_reconciled, is_recurring, is_installment, recurring_group_id,
		installment_period, installment_total, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, false, $7, $8, $9, $10, $11, NOW(), NOW())
	RETURNING id, created_at, updated_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	err := s.db.QueryRowContext(ctx, insertQuery,
		tx.Date,
		tx.Amount,
		tx.PaymentMethod,
		tx.CardBank,
		tx.Category,
		tx.Description,
		tx.IsRecurring,
		tx.IsInstallment,
		tx.RecurringGroupID,
		tx.InstallmentPeriod,
		tx.InstallmentTotal,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

// CreateTransactions inserts a whole series atomically so a generated
// recurring or installment plan is never half-written.
func (s *Store) CreateTransactions(ctx context.Context, txs []*transaction.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	for _, tx := range txs {
		err := dbTx.QueryRowContext(ctx, insertQuery,
			tx.Date,
			tx.Amount,
			tx.PaymentMethod,
			tx.CardBank,
			tx.Category,
			tx.Description,
			tx.IsRecurring,
			tx.IsInstallment,
			tx.RecurringGroupID,
			tx.InstallmentPeriod,
			tx.InstallmentTotal,
		).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectColumns + ` FROM transactions WHERE id = $1 AND deleted_at IS NULL`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectColumns + ` FROM transactions WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.CardBank != nil {
		query += fmt.Sprintf(" AND card_bank = $%d", argIdx)

		args = append(args, *filter.CardBank)
		argIdx++
	}

	if filter.PaymentMethod != nil {
		query += fmt.Sprintf(" AND payment_method = $%d", argIdx)

		args = append(args, *filter.PaymentMethod)
		argIdx++
	}

	if filter.Reconciled != nil {
		query += fmt.Sprintf(" AND is_reconciled = $%d", argIdx)

		args = append(args, *filter.Reconciled)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE transactions
		SET date = $1, amount = $2, payment_method = $3, card_bank = $4,
			category = $5, description = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		tx.Date,
		tx.Amount,
		tx.PaymentMethod,
		tx.CardBank,
		tx.Category,
		tx.Description,
		tx.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateReconciliation(ctx context.Context, id uuid.UUID, reconciled bool, at *time.Time) error {
	query := `
		UPDATE transactions
		SET is_reconciled = $1, reconciled_at = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, reconciled, at, id)
	if err != nil {
		return fmt.Errorf("updating reconciliation: %w", err)
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE transactions
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}
