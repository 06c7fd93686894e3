package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
	"github.com/MrJamesThe3rd/homebill/internal/budget"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Income and card entries are small ordered lists edited as a unit, so they
// are stored as JSON columns instead of child tables.

func (s *Store) GetBudget(ctx context.Context, month string) (*budget.MonthlyBudget, error) {
	query := `
		SELECT month, opening_balance, loan, incomes, credit_cards
		FROM monthly_budgets
		WHERE month = $1
	`

	b, err := scanBudget(s.db.QueryRowContext(ctx, query, month))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, budget.ErrNotFound
		}

		return nil, fmt.Errorf("getting budget: %w", err)
	}

	return b, nil
}

func (s *Store) ListBudgets(ctx context.Context) ([]*budget.MonthlyBudget, error) {
	query := `
		SELECT month, opening_balance, loan, incomes, credit_cards
		FROM monthly_budgets
		ORDER BY month ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.MonthlyBudget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budget rows: %w", err)
	}

	return budgets, nil
}

func (s *Store) SaveBudget(ctx context.Context, b *budget.MonthlyBudget) error {
	incomes, err := json.Marshal(b.Incomes)
	if err != nil {
		return fmt.Errorf("encoding incomes: %w", err)
	}

	cards, err := json.Marshal(b.CreditCards)
	if err != nil {
		return fmt.Errorf("encoding credit cards: %w", err)
	}

	query := `
		INSERT INTO monthly_budgets (month, opening_balance, loan, incomes, credit_cards, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (month) DO UPDATE
		SET opening_balance = EXCLUDED.opening_balance,
			loan = EXCLUDED.loan,
			incomes = EXCLUDED.incomes,
			credit_cards = EXCLUDED.credit_cards,
			updated_at = NOW()
	`

	_, err = s.db.ExecContext(ctx, query, b.Month.String(), b.OpeningBalance, b.Loan, incomes, cards)
	if err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}

	return nil
}

func (s *Store) ListIncomeSources(ctx context.Context) ([]budget.IncomeSource, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM income_sources ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing income sources: %w", err)
	}
	defer rows.Close()

	var sources []budget.IncomeSource

	for rows.Next() {
		var src budget.IncomeSource
		if err := rows.Scan(&src.ID, &src.Name); err != nil {
			return nil, fmt.Errorf("scanning income source: %w", err)
		}

		sources = append(sources, src)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating income sources: %w", err)
	}

	return sources, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBudget(s scanner) (*budget.MonthlyBudget, error) {
	var b budget.MonthlyBudget

	var monthKey string

	var incomes, cards []byte

	if err := s.Scan(&monthKey, &b.OpeningBalance, &b.Loan, &incomes, &cards); err != nil {
		return nil, err
	}

	month, err := billing.ParseMonth(monthKey)
	if err != nil {
		return nil, err
	}

	b.Month = month

	if len(incomes) > 0 {
		if err := json.Unmarshal(incomes, &b.Incomes); err != nil {
			return nil, fmt.Errorf("decoding incomes: %w", err)
		}
	}

	if len(cards) > 0 {
		if err := json.Unmarshal(cards, &b.CreditCards); err != nil {
			return nil, fmt.Errorf("decoding credit cards: %w", err)
		}
	}

	return &b, nil
}
