package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileRemote persists snapshots as a JSON document on disk. It stands in for
// the cloud store in self-hosted deployments and in tests; the Remote
// contract is the same either way.
type FileRemote struct {
	Path string
}

func NewFileRemote(path string) *FileRemote {
	return &FileRemote{Path: path}
}

// Load reads the stored snapshot. A missing file yields an empty snapshot
// rather than an error: a fresh deployment has simply never saved.
func (r *FileRemote) Load(_ context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Snapshot{}, nil
		}

		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	return &snap, nil
}

// Save writes the snapshot atomically via a temp-file rename so a crash mid
// write never truncates the stored document.
func (r *FileRemote) Save(_ context.Context, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.Path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}

	tmp := r.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	if err := os.Rename(tmp, r.Path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	return nil
}
