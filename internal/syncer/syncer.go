package syncer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/MrJamesThe3rd/homebill/internal/budget"
	"github.com/MrJamesThe3rd/homebill/internal/card"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

// Snapshot is the full document handed to the remote store. The core never
// specifies its transport or storage format.
type Snapshot struct {
	Transactions  []*transaction.Transaction `json:"transactions"`
	CardSettings  []*card.Setting            `json:"cardSettings"`
	Budgets       []*budget.MonthlyBudget    `json:"budgets"`
	IncomeSources []budget.IncomeSource      `json:"incomeSources"`
	Categories    []string                   `json:"categories"`
	CardBanks     []string                   `json:"cardBanks"`
}

// Remote is the persistence collaborator at the system boundary.
type Remote interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// Status is the sync state surfaced to the UI. Failures never propagate into
// core computation; the last-known-good snapshot stays in effect.
type Status string

const (
	StatusIdle   Status = "idle"
	StatusSaving Status = "saving"
	StatusSynced Status = "synced"
	StatusError  Status = "error"
)

// SnapshotFunc assembles the current local snapshot at save time.
type SnapshotFunc func(ctx context.Context) (*Snapshot, error)

// Syncer debounces local edits into a single outbound save and guarantees
// that saves for the same document are never in flight concurrently. A save
// that fires while another is running is deferred, not dropped.
type Syncer struct {
	remote   Remote
	snapshot SnapshotFunc
	debounce time.Duration

	mu           sync.Mutex
	timer        *time.Timer
	saving       bool
	pending      bool
	suppressNext bool
	status       Status
	lastErr      error
}

func New(remote Remote, snapshot SnapshotFunc, debounce time.Duration) *Syncer {
	return &Syncer{
		remote:   remote,
		snapshot: snapshot,
		debounce: debounce,
		status:   StatusIdle,
	}
}

// Changed notifies the syncer that local state was edited. Rapid successive
// edits collapse into one save after the debounce window.
//
// The first Changed after a remote load is swallowed: that change is the echo
// of the data the remote just wrote, and saving it back would be spurious.
func (s *Syncer) Changed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.suppressNext {
		s.suppressNext = false
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.debounce, s.save)
}

// Load fetches the remote snapshot and arms echo suppression so that applying
// it locally does not trigger a save of the very data just received. A failed
// load leaves local state untouched.
func (s *Syncer) Load(ctx context.Context) (*Snapshot, error) {
	snap, err := s.remote.Load(ctx)
	if err != nil {
		s.mu.Lock()
		s.status = StatusError
		s.lastErr = err
		s.mu.Unlock()

		return nil, err
	}

	s.mu.Lock()
	s.suppressNext = true
	s.status = StatusSynced
	s.lastErr = nil
	s.mu.Unlock()

	return snap, nil
}

// Flush saves immediately, bypassing the debounce window. Any armed timer is
// cancelled since its work is being done now.
func (s *Syncer) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	s.save()
}

// Status reports the current sync state and the last save/load error, if any.
func (s *Syncer) Status() (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status, s.lastErr
}

func (s *Syncer) save() {
	s.mu.Lock()
	if s.saving {
		// A save is in flight; run again once it completes rather than
		// issuing a concurrent one.
		s.pending = true
		s.mu.Unlock()

		return
	}

	s.saving = true
	s.status = StatusSaving
	s.mu.Unlock()

	ctx := context.Background()

	err := s.doSave(ctx)

	s.mu.Lock()
	s.saving = false

	if err != nil {
		// Fail-open: local state is not rolled back.
		s.status = StatusError
		s.lastErr = err
		slog.Error("remote save failed", "error", err)
	} else {
		s.status = StatusSynced
		s.lastErr = nil
	}

	rerun := s.pending
	s.pending = false
	s.mu.Unlock()

	if rerun {
		s.save()
	}
}

func (s *Syncer) doSave(ctx context.Context) error {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return err
	}

	return s.remote.Save(ctx, snap)
}
