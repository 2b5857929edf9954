package ports

import (
	"context"

	"leetcode-sync/internal/domain/model"
)

// ArtifactWriter stores a submission on disk and returns the written path.
type ArtifactWriter interface {
	Write(ctx context.Context, detail *model.SubmissionDetail) (string, error)
}
