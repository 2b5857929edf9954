package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"leetcode-sync/internal/domain/model"
	"leetcode-sync/internal/domain/ports"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	problemURL      = "https://leetcode.com/problems/%s/"
	unknownTitle    = "unknown-title"
)

// Writer stores submissions as source files under a root directory, one
// directory per question.
type Writer struct {
	root     string
	location *time.Location
	now      func() time.Time
}

var _ ports.ArtifactWriter = (*Writer)(nil)

// Option customizes a Writer.
type Option func(*Writer)

// WithLocation renders header timestamps in loc instead of local time.
func WithLocation(loc *time.Location) Option {
	return func(w *Writer) {
		if loc != nil {
			w.location = loc
		}
	}
}

// WithClock sets the clock used when a submission has no timestamp.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		if now != nil {
			w.now = now
		}
	}
}

// NewWriter creates a Writer rooted at root.
func NewWriter(root string, opts ...Option) *Writer {
	w := &Writer{
		root:     root,
		location: time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Path returns the file path detail is stored at.
func (w *Writer) Path(detail *model.SubmissionDetail) string {
	qid, slug := questionKey(detail)
	lang := lookupLanguage(detail.Lang)
	dir := fmt.Sprintf("%s_%s", qid, slug)
	name := fmt.Sprintf("%s-%s-%s.%s", qid, slug, pathSegment(detail.ID), lang.ext)
	return filepath.Join(w.root, dir, name)
}

// Write renders detail and stores it, replacing any previous file at the same path.
func (w *Writer) Write(ctx context.Context, detail *model.SubmissionDetail) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if detail == nil {
		return "", fmt.Errorf("submission detail is required")
	}

	path := w.Path(detail)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create question dir: %w", err)
	}
	if err := os.WriteFile(path, w.Render(detail), 0o644); err != nil {
		return "", fmt.Errorf("write submission %s: %w", detail.ID, err)
	}
	return path, nil
}

// Render returns the file content for detail: nine header lines, a blank
// line, then the code exactly as submitted.
func (w *Writer) Render(detail *model.SubmissionDetail) []byte {
	qid, slug := questionKey(detail)
	leader := lookupLanguage(detail.Lang).leader

	title := detail.Question.Title
	if title == "" {
		title = unknownTitle
	}

	ts := detail.Timestamp
	var when time.Time
	if ts > 0 {
		when = time.Unix(ts, 0)
	} else {
		when = w.now()
	}

	fields := []struct {
		key   string
		value string
	}{
		{"Title", title},
		{"URL", fmt.Sprintf(problemURL, slug)},
		{"Question ID", qid},
		{"Submission ID", detail.ID},
		{"Status", detail.Status},
		{"Language", detail.Lang},
		{"Runtime", detail.Runtime},
		{"Memory", detail.Memory},
		{"Timestamp", when.In(w.location).Format(timestampLayout)},
	}

	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "%s %s: %s\n", leader, f.key, f.value)
	}
	b.WriteString("\n")
	b.WriteString(detail.Code)
	return []byte(b.String())
}

func questionKey(detail *model.SubmissionDetail) (string, string) {
	qid := pathSegment(detail.Question.FrontendID)
	slug := pathSegment(detail.Question.Slug)
	if slug == "" {
		slug = "unknown-" + qid
	}
	return qid, slug
}

// pathSegment keeps a remote value from escaping the output root: path
// separators become dashes and dot-only names are replaced.
func pathSegment(value string) string {
	value = strings.TrimSpace(value)
	value = strings.NewReplacer("/", "-", `\`, "-").Replace(value)
	if strings.Trim(value, ".") == "" && value != "" {
		return "unknown"
	}
	return value
}
