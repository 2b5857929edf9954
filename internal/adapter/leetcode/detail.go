package leetcode

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"leetcode-sync/internal/domain/model"
)

const submissionDetailQuery = `query submissionDetail($submissionId: Int!) {
  submissionDetail(submissionId: $submissionId) {
    id
    code
    runtime
    memory
    statusDisplay
    lang
    timestamp
    question {
      title
      titleSlug
      questionFrontendId
    }
  }
}`

// FetchDetail retrieves the code and metadata of one submission.
func (c *Client) FetchDetail(ctx context.Context, id string) (*model.SubmissionDetail, error) {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid submission id %q: %w", id, err)
	}

	resp, err := c.graphQL(ctx, submissionDetailQuery, map[string]any{"submissionId": numericID})
	if err != nil {
		return nil, err
	}

	var data struct {
		SubmissionDetail *struct {
			ID            flexString   `json:"id"`
			Code          string       `json:"code"`
			Runtime       flexString   `json:"runtime"`
			Memory        flexString   `json:"memory"`
			StatusDisplay string       `json:"statusDisplay"`
			Lang          string       `json:"lang"`
			Timestamp     unixSeconds  `json:"timestamp"`
			Question      *questionRef `json:"question"`
		} `json:"submissionDetail"`
	}
	if err := decodeData(resp, &data); err != nil {
		return nil, err
	}

	d := data.SubmissionDetail
	if d == nil {
		if len(resp.Errors) > 0 {
			return nil, fmt.Errorf("%w: %s", model.ErrNotFound, resp.errorText())
		}
		return nil, model.ErrNotFound
	}

	detailID := string(d.ID)
	if detailID == "" {
		detailID = id
	}

	return &model.SubmissionDetail{
		ID:        detailID,
		Code:      d.Code,
		Runtime:   string(d.Runtime),
		Memory:    string(d.Memory),
		Status:    d.StatusDisplay,
		Lang:      d.Lang,
		Timestamp: int64(d.Timestamp),
		Question:  d.Question.toModel(),
	}, nil
}

// decodeData unmarshals the data member of a GraphQL response. A missing
// or null data member leaves out untouched.
func decodeData(resp graphQLResponse, out any) error {
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}
	return nil
}
