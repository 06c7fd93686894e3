package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/homebill/internal/card"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Settings live in card_settings; per-month statement state (issued flag and
// recorded amount) lives in card_statements keyed by (bank, month). The two
// columns are independent so a month can carry an amount without being
// issued, and vice versa.

func (s *Store) GetSetting(ctx context.Context, bank string) (*card.Setting, error) {
	query := `SELECT bank, statement_day, is_next_month FROM card_settings WHERE bank = $1`

	setting := card.NewSetting(bank)

	err := s.db.QueryRowContext(ctx, query, bank).
		Scan(&setting.Bank, &setting.StatementDay, &setting.IsNextMonth)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, card.ErrNotFound
		}

		return nil, fmt.Errorf("getting card setting: %w", err)
	}

	if err := s.loadStatements(ctx, setting); err != nil {
		return nil, err
	}

	return setting, nil
}

func (s *Store) ListSettings(ctx context.Context) ([]*card.Setting, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT bank, statement_day, is_next_month FROM card_settings ORDER BY bank ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing card settings: %w", err)
	}
	defer rows.Close()

	var settings []*card.Setting

	for rows.Next() {
		setting := card.NewSetting("")
		if err := rows.Scan(&setting.Bank, &setting.StatementDay, &setting.IsNextMonth); err != nil {
			return nil, fmt.Errorf("scanning card setting: %w", err)
		}

		settings = append(settings, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating card settings: %w", err)
	}

	for _, setting := range settings {
		if err := s.loadStatements(ctx, setting); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

func (s *Store) loadStatements(ctx context.Context, setting *card.Setting) error {
	query := `SELECT month, issued, amount FROM card_statements WHERE bank = $1`

	rows, err := s.db.QueryContext(ctx, query, setting.Bank)
	if err != nil {
		return fmt.Errorf("loading card statements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var month string

		var issued bool

		var amount sql.NullInt64

		if err := rows.Scan(&month, &issued, &amount); err != nil {
			return fmt.Errorf("scanning card statement: %w", err)
		}

		if issued {
			setting.IssuedMonths[month] = true
		}

		if amount.Valid {
			setting.StatementAmounts[month] = amount.Int64
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating card statements: %w", err)
	}

	return nil
}

func (s *Store) SaveSetting(ctx context.Context, setting *card.Setting) error {
	query := `
		INSERT INTO card_settings (bank, statement_day, is_next_month, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (bank) DO UPDATE
		SET statement_day = EXCLUDED.statement_day,
			is_next_month = EXCLUDED.is_next_month,
			updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, setting.Bank, setting.StatementDay, setting.IsNextMonth)
	if err != nil {
		return fmt.Errorf("saving card setting: %w", err)
	}

	return nil
}

func (s *Store) SetIssued(ctx context.Context, bank, month string, issued bool) error {
	query := `
		INSERT INTO card_statements (bank, month, issued)
		VALUES ($1, $2, $3)
		ON CONFLICT (bank, month) DO UPDATE SET issued = EXCLUDED.issued
	`

	_, err := s.db.ExecContext(ctx, query, bank, month, issued)
	if err != nil {
		return fmt.Errorf("setting issued flag: %w", err)
	}

	return nil
}

func (s *Store) SetStatementAmount(ctx context.Context, bank, month string, amount int64) error {
	query := `
		INSERT INTO card_statements (bank, month, issued, amount)
		VALUES ($1, $2, false, $3)
		ON CONFLICT (bank, month) DO UPDATE SET amount = EXCLUDED.amount
	`

	_, err := s.db.ExecContext(ctx, query, bank, month, amount)
	if err != nil {
		return fmt.Errorf("setting statement amount: %w", err)
	}

	return nil
}
