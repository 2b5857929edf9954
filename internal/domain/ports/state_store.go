package ports

import (
	"context"

	"leetcode-sync/internal/domain/model"
)

// StateStore persists the sync checkpoint.
type StateStore interface {
	// Load returns the processed ids, or an empty set when no checkpoint exists.
	Load(ctx context.Context) (*model.ProcessedSet, error)

	// Save replaces the checkpoint with the given set.
	Save(ctx context.Context, set *model.ProcessedSet) error
}
