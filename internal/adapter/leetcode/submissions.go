package leetcode

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"leetcode-sync/internal/domain/model"
)

const submissionListQuery = `query submissionList($offset: Int!, $limit: Int!) {
  submissionList(offset: $offset, limit: $limit) {
    submissions {
      id
      statusDisplay
      lang
      timestamp
      question {
        title
        titleSlug
        questionFrontendId
      }
    }
    hasNext
  }
}`

type questionRef struct {
	Title              string     `json:"title"`
	TitleSlug          string     `json:"titleSlug"`
	QuestionFrontendID flexString `json:"questionFrontendId"`
}

func (q *questionRef) toModel() model.Question {
	if q == nil {
		return model.Question{}
	}
	return model.Question{
		Title:      q.Title,
		Slug:       q.TitleSlug,
		FrontendID: string(q.QuestionFrontendID),
	}
}

// pageFunc fetches the page starting at offset and reports whether more pages exist.
type pageFunc func(ctx context.Context, offset, limit int) ([]model.SubmissionSummary, bool, error)

// paginate walks pages until the remote returns an empty page or signals no more.
func (c *Client) paginate(ctx context.Context, fetch pageFunc) ([]model.SubmissionSummary, error) {
	submissions := make([]model.SubmissionSummary, 0)
	offset := 0
	for {
		page, hasNext, err := fetch(ctx, offset, c.pageSize)
		if err != nil {
			return nil, fmt.Errorf("page at offset %d: %w", offset, err)
		}
		c.debug(ctx, "fetched submission page", "offset", offset, "count", len(page), "hasNext", hasNext)
		if len(page) == 0 {
			break
		}
		submissions = append(submissions, page...)
		if !hasNext {
			break
		}
		offset += len(page)
		if err := c.wait(ctx, c.pageDelay); err != nil {
			return nil, err
		}
	}
	return submissions, nil
}

func (c *Client) wait(ctx context.Context, d time.Duration) error {
	if c.pacer == nil {
		return ctx.Err()
	}
	return c.pacer.Wait(ctx, d)
}

// ListAll returns every submission of the signed-in user, newest first.
func (c *Client) ListAll(ctx context.Context) ([]model.SubmissionSummary, error) {
	return c.paginate(ctx, c.fetchGraphQLPage)
}

func (c *Client) fetchGraphQLPage(ctx context.Context, offset, limit int) ([]model.SubmissionSummary, bool, error) {
	resp, err := c.graphQL(ctx, submissionListQuery, map[string]any{"offset": offset, "limit": limit})
	if err != nil {
		return nil, false, err
	}
	if len(resp.Errors) > 0 {
		return nil, false, fmt.Errorf("graphql error: %s", resp.errorText())
	}

	var data struct {
		SubmissionList *struct {
			Submissions []struct {
				ID            flexString   `json:"id"`
				StatusDisplay string       `json:"statusDisplay"`
				Lang          string       `json:"lang"`
				Timestamp     unixSeconds  `json:"timestamp"`
				Question      *questionRef `json:"question"`
			} `json:"submissions"`
			HasNext bool `json:"hasNext"`
		} `json:"submissionList"`
	}
	if err := decodeData(resp, &data); err != nil {
		return nil, false, err
	}
	// Only an empty submissions array ends the listing.
	if data.SubmissionList == nil {
		return nil, false, fmt.Errorf("decode graphql data: submissionList missing")
	}

	page := make([]model.SubmissionSummary, 0, len(data.SubmissionList.Submissions))
	for _, s := range data.SubmissionList.Submissions {
		page = append(page, model.SubmissionSummary{
			ID:        string(s.ID),
			Status:    s.StatusDisplay,
			Lang:      s.Lang,
			Timestamp: int64(s.Timestamp),
			Question:  s.Question.toModel(),
		})
	}
	return page, data.SubmissionList.HasNext, nil
}

// RESTLister lists submissions through the paginated /api/submissions/ endpoint.
type RESTLister struct {
	client *Client
}

// NewRESTLister builds a lister sharing the session of client.
func NewRESTLister(client *Client) *RESTLister {
	return &RESTLister{client: client}
}

// ListAll returns every submission of the signed-in user, newest first.
func (l *RESTLister) ListAll(ctx context.Context) ([]model.SubmissionSummary, error) {
	return l.client.paginate(ctx, l.fetchPage)
}

func (l *RESTLister) fetchPage(ctx context.Context, offset, limit int) ([]model.SubmissionSummary, bool, error) {
	path := fmt.Sprintf("/api/submissions/?offset=%d&limit=%d", offset, limit)
	req, err := l.client.newRequest(ctx, http.MethodGet, path, http.NoBody)
	if err != nil {
		return nil, false, err
	}

	var payload struct {
		SubmissionsDump []struct {
			ID            flexString  `json:"id"`
			Lang          string      `json:"lang"`
			Timestamp     unixSeconds `json:"timestamp"`
			StatusDisplay string      `json:"status_display"`
			Title         string      `json:"title"`
			TitleSlug     string      `json:"title_slug"`
		} `json:"submissions_dump"`
		HasNext bool `json:"has_next"`
	}
	if err := l.client.do(req, &payload); err != nil {
		return nil, false, err
	}

	page := make([]model.SubmissionSummary, 0, len(payload.SubmissionsDump))
	for _, s := range payload.SubmissionsDump {
		page = append(page, model.SubmissionSummary{
			ID:        string(s.ID),
			Status:    s.StatusDisplay,
			Lang:      s.Lang,
			Timestamp: int64(s.Timestamp),
			Question: model.Question{
				Title: s.Title,
				Slug:  s.TitleSlug,
			},
		})
	}
	return page, payload.HasNext, nil
}
