package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"leetcode-sync/internal/domain/model"
	"leetcode-sync/internal/domain/ports"
)

// checkpoint is the on-disk shape of the JSON state file.
type checkpoint struct {
	ProcessedIDs []string `json:"processed_ids"`
}

// JSONStore keeps the processed ids in a human-readable JSON file.
type JSONStore struct {
	path string
}

var _ ports.StateStore = (*JSONStore)(nil)

// NewJSONStore returns a store backed by the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads the checkpoint. A missing file yields an empty set.
func (s *JSONStore) Load(ctx context.Context) (*model.ProcessedSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.NewProcessedSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var cp checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, fmt.Errorf("decode state file %s: %w", s.path, err)
	}
	return model.NewProcessedSet(cp.ProcessedIDs...), nil
}

// Save replaces the checkpoint file. The file is written next to its final
// location and renamed into place.
func (s *JSONStore) Save(ctx context.Context, set *model.ProcessedSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(checkpoint{ProcessedIDs: set.Sorted()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
