package ports

import (
	"context"

	"leetcode-sync/internal/domain/model"
)

// SubmissionLister returns every submission of the configured user,
// newest first, paginating until the remote runs out of pages.
type SubmissionLister interface {
	ListAll(ctx context.Context) ([]model.SubmissionSummary, error)
}

// SubmissionFetcher retrieves the full detail of one submission.
// It returns model.ErrNotFound when the remote has no record for id.
type SubmissionFetcher interface {
	FetchDetail(ctx context.Context, id string) (*model.SubmissionDetail, error)
}
