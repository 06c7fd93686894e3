package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=card
type Repository interface {
	GetSetting(ctx context.Context, bank string) (*Setting, error)
	ListSettings(ctx context.Context) ([]*Setting, error)
	SaveSetting(ctx context.Context, setting *Setting) error
	SetIssued(ctx context.Context, bank, month string, issued bool) error
	SetStatementAmount(ctx context.Context, bank, month string, amount int64) error
}

// Service owns all statement state. Every mutation goes through one of its
// named operations so derived aggregates can be recomputed consistently.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the setting for a bank, or a fresh zero-day setting when none
// is stored. An unknown bank is not an error: it simply has no cycle.
func (s *Service) Get(ctx context.Context, bank string) (*Setting, error) {
	setting, err := s.repo.GetSetting(ctx, bank)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return NewSetting(bank), nil
		}

		return nil, fmt.Errorf("get card setting: %w", err)
	}

	return setting, nil
}

func (s *Service) List(ctx context.Context) ([]*Setting, error) {
	return s.repo.ListSettings(ctx)
}

func (s *Service) SetStatementDay(ctx context.Context, bank string, day int) (*Setting, error) {
	if day < 0 || day > 31 {
		return nil, fmt.Errorf("statement day %d out of range", day)
	}

	setting, err := s.Get(ctx, bank)
	if err != nil {
		return nil, err
	}

	setting.StatementDay = day
	if err := s.repo.SaveSetting(ctx, setting); err != nil {
		return nil, fmt.Errorf("save card setting: %w", err)
	}

	return setting, nil
}

func (s *Service) SetNextMonthFlag(ctx context.Context, bank string, isNextMonth bool) (*Setting, error) {
	setting, err := s.Get(ctx, bank)
	if err != nil {
		return nil, err
	}

	setting.IsNextMonth = isNextMonth
	if err := s.repo.SaveSetting(ctx, setting); err != nil {
		return nil, fmt.Errorf("save card setting: %w", err)
	}

	return setting, nil
}

// RecordStatementAmount stores the authoritative statement total for a
// billing month. Once recorded it supersedes any computed reconciled sum.
func (s *Service) RecordStatementAmount(ctx context.Context, bank string, month billing.Month, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("statement amount must be non-negative")
	}

	if err := s.repo.SetStatementAmount(ctx, bank, month.String(), amount); err != nil {
		return fmt.Errorf("record statement amount: %w", err)
	}

	return nil
}

// ToggleIssued flips the finalized state of a billing month and reports the
// new state.
//
// Unchecking is non-destructive: the recorded amount is retained. Checking
// snapshots the entered statement total, when one is supplied, so a finalized
// bill stays stable even if transactions are edited afterwards.
func (s *Service) ToggleIssued(ctx context.Context, bank string, month billing.Month, enteredTotal *int64) (bool, error) {
	setting, err := s.Get(ctx, bank)
	if err != nil {
		return false, err
	}

	key := month.String()

	if setting.IsIssued(key) {
		if err := s.repo.SetIssued(ctx, bank, key, false); err != nil {
			return false, fmt.Errorf("unset issued: %w", err)
		}

		return false, nil
	}

	if err := s.repo.SetIssued(ctx, bank, key, true); err != nil {
		return false, fmt.Errorf("set issued: %w", err)
	}

	if enteredTotal != nil {
		if err := s.repo.SetStatementAmount(ctx, bank, key, *enteredTotal); err != nil {
			return false, fmt.Errorf("snapshot statement amount: %w", err)
		}
	}

	return true, nil
}

func (s *Service) IsIssued(ctx context.Context, bank string, month billing.Month) (bool, error) {
	setting, err := s.Get(ctx, bank)
	if err != nil {
		return false, err
	}

	return setting.IsIssued(month.String()), nil
}
