package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"leetcode-sync/internal/domain/ports"
)

const (
	defaultBaseURL  = "https://leetcode.com"
	defaultPageSize = 50
	userAgent       = "Mozilla/5.0 (compatible; leetcode-sync/1.0)"
	sessionCookie   = "LEETCODE_SESSION"
	csrfCookie      = "csrftoken"
)

// Options configures a Client.
type Options struct {
	BaseURL   string
	Session   string
	CSRFToken string
	Timeout   time.Duration
	PageSize  int
	PageDelay time.Duration
}

// Client talks to LeetCode on behalf of one signed-in user. It lists
// submissions through the GraphQL submissionList query and fetches
// submission details.
type Client struct {
	baseURL    string
	csrfToken  string
	httpClient *http.Client
	pacer      ports.Pacer
	logger     ports.Logger
	pageSize   int
	pageDelay  time.Duration
}

var (
	_ ports.SubmissionLister  = (*Client)(nil)
	_ ports.SubmissionFetcher = (*Client)(nil)
)

// New creates a new LeetCode client carrying the session cookie.
func New(opts Options, pacer ports.Pacer, logger ports.Logger) (*Client, error) {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	cookies := []*http.Cookie{{Name: sessionCookie, Value: opts.Session, Path: "/"}}
	if opts.CSRFToken != "" {
		cookies = append(cookies, &http.Cookie{Name: csrfCookie, Value: opts.CSRFToken, Path: "/"})
	}
	jar.SetCookies(baseURL, cookies)

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		baseURL:    base,
		csrfToken:  opts.CSRFToken,
		httpClient: &http.Client{Timeout: opts.Timeout, Jar: jar},
		pacer:      pacer,
		logger:     logger,
		pageSize:   pageSize,
		pageDelay:  opts.PageDelay,
	}, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", c.baseURL)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	if c.csrfToken != "" {
		req.Header.Set("X-Csrftoken", c.csrfToken)
	}
	return req, nil
}

// do performs req and decodes a JSON body into out.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

func (r graphQLResponse) errorText() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// graphQL posts query to the /graphql endpoint. The returned response has
// not been checked for GraphQL-level errors.
func (c *Client) graphQL(ctx context.Context, query string, variables map[string]any) (graphQLResponse, error) {
	payload := map[string]any{
		"query":     query,
		"variables": variables,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return graphQLResponse{}, fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/graphql", bytes.NewReader(body))
	if err != nil {
		return graphQLResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var gqlResp graphQLResponse
	if err := c.do(req, &gqlResp); err != nil {
		return graphQLResponse{}, err
	}
	return gqlResp, nil
}

func (c *Client) debug(ctx context.Context, msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(ctx, msg, args...)
	}
}
