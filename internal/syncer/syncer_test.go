package syncer_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/homebill/internal/syncer"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

type fakeRemote struct {
	mu       sync.Mutex
	saves    int
	inFlight int
	maxSeen  int
	saveErr  error
	delay    time.Duration
	loadSnap *syncer.Snapshot
	loadErr  error
}

func (r *fakeRemote) Load(context.Context) (*syncer.Snapshot, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}

	return r.loadSnap, nil
}

func (r *fakeRemote) Save(context.Context, *syncer.Snapshot) error {
	r.mu.Lock()
	r.inFlight++
	if r.inFlight > r.maxSeen {
		r.maxSeen = r.inFlight
	}
	r.mu.Unlock()

	if r.delay > 0 {
		time.Sleep(r.delay)
	}

	r.mu.Lock()
	r.inFlight--
	r.saves++
	r.mu.Unlock()

	return r.saveErr
}

func (r *fakeRemote) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saves
}

func emptySnapshot(context.Context) (*syncer.Snapshot, error) {
	return &syncer.Snapshot{}, nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}

		time.Sleep(5 * time.Millisecond)
	}

	t.Fatal("condition not met in time")
}

func TestSyncer_DebouncesRapidEdits(t *testing.T) {
	remote := &fakeRemote{}
	s := syncer.New(remote, emptySnapshot, 30*time.Millisecond)

	for i := 0; i < 10; i++ {
		s.Changed()
	}

	waitFor(t, func() bool { return remote.saveCount() == 1 })

	// No further saves without further edits.
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 1, remote.saveCount())
}

func TestSyncer_FirstEditWithoutLoadSaves(t *testing.T) {
	// Suppression is armed only by applying a remote load. A syncer that has
	// never loaded must save the very first edit; otherwise the snapshot lags
	// one edit behind until the next mutation.
	remote := &fakeRemote{}
	s := syncer.New(remote, emptySnapshot, time.Millisecond)

	s.Changed()
	waitFor(t, func() bool { return remote.saveCount() == 1 })
}

func TestSyncer_EchoSuppression(t *testing.T) {
	remote := &fakeRemote{loadSnap: &syncer.Snapshot{
		Transactions: []*transaction.Transaction{{Amount: 100}},
	}}
	s := syncer.New(remote, emptySnapshot, 10*time.Millisecond)

	snap, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Transactions, 1)

	// The change caused by applying the remote snapshot must not save it
	// right back.
	s.Changed()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, remote.saveCount())

	// A genuine local edit afterwards saves normally.
	s.Changed()
	waitFor(t, func() bool { return remote.saveCount() == 1 })
}

func TestSyncer_SingleFlightSaves(t *testing.T) {
	remote := &fakeRemote{delay: 40 * time.Millisecond}
	s := syncer.New(remote, emptySnapshot, time.Millisecond)

	s.Flush()

	go s.Flush()
	go s.Flush()

	waitFor(t, func() bool { return remote.saveCount() >= 2 })

	remote.mu.Lock()
	defer remote.mu.Unlock()
	assert.Equal(t, 1, remote.maxSeen, "saves must never overlap")
}

func TestSyncer_FailedSaveIsFailOpen(t *testing.T) {
	remote := &fakeRemote{saveErr: errors.New("network down")}
	s := syncer.New(remote, emptySnapshot, time.Millisecond)

	s.Flush()

	waitFor(t, func() bool {
		status, _ := s.Status()
		return status == syncer.StatusError
	})

	_, err := s.Status()
	assert.Error(t, err)

	// Recovery: the next save clears the error.
	remote.saveErr = nil
	s.Flush()

	waitFor(t, func() bool {
		status, _ := s.Status()
		return status == syncer.StatusSynced
	})
}

func TestSyncer_FailedLoadKeepsLocalState(t *testing.T) {
	remote := &fakeRemote{loadErr: errors.New("offline")}
	s := syncer.New(remote, emptySnapshot, time.Millisecond)

	snap, err := s.Load(context.Background())
	assert.Error(t, err)
	assert.Nil(t, snap)

	status, _ := s.Status()
	assert.Equal(t, syncer.StatusError, status)
}

func TestFileRemote_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots", "homebill.json")
	remote := syncer.NewFileRemote(path)

	// Missing file loads as an empty snapshot.
	snap, err := remote.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Transactions)

	want := &syncer.Snapshot{
		Categories: []string{"food", "transport"},
		CardBanks:  []string{"X", "Y"},
	}
	require.NoError(t, remote.Save(context.Background(), want))

	got, err := remote.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want.Categories, got.Categories)
	assert.Equal(t, want.CardBanks, got.CardBanks)
}
