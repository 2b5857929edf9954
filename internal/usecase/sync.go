package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"leetcode-sync/internal/domain/model"
	"leetcode-sync/internal/domain/ports"
)

// Sync mirrors new LeetCode submissions to disk and records them in the checkpoint.
type Sync struct {
	lister       ports.SubmissionLister
	fetcher      ports.SubmissionFetcher
	writer       ports.ArtifactWriter
	state        ports.StateStore
	pacer        ports.Pacer
	notifier     ports.Notifier
	logger       ports.Logger
	username     string
	onlyAccepted bool
	detailDelay  time.Duration
	newRunID     func() string
}

// SyncConfig controls optional behaviours for the sync.
type SyncConfig struct {
	Username     string
	OnlyAccepted bool
	DetailDelay  time.Duration
}

// NewSync constructs a Sync use case. notifier may be nil.
func NewSync(
	lister ports.SubmissionLister,
	fetcher ports.SubmissionFetcher,
	writer ports.ArtifactWriter,
	state ports.StateStore,
	pacer ports.Pacer,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg SyncConfig,
) *Sync {
	return &Sync{
		lister:       lister,
		fetcher:      fetcher,
		writer:       writer,
		state:        state,
		pacer:        pacer,
		notifier:     notifier,
		logger:       logger,
		username:     cfg.Username,
		onlyAccepted: cfg.OnlyAccepted,
		detailDelay:  cfg.DetailDelay,
		newRunID:     uuid.NewString,
	}
}

// Run executes one sync pass. A listing failure aborts the run before
// anything is written or saved. Per-submission failures are logged and the
// submission is left for the next run.
func (s *Sync) Run(ctx context.Context) (*model.SyncReport, error) {
	start := time.Now()
	report := &model.SyncReport{RunID: s.newRunID()}
	s.logger.Info(ctx, "starting sync", "run_id", report.RunID, "user", s.username, "only_accepted", s.onlyAccepted)

	processed, err := s.state.Load(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to load state", "error", err)
		return report, fmt.Errorf("load state: %w", err)
	}

	s.logger.Info(ctx, "fetching submissions list")
	submissions, err := s.lister.ListAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to list submissions", "error", err)
		return report, &model.ListingError{Err: err}
	}
	report.Listed = len(submissions)
	s.logger.Info(ctx, "submissions fetched", "total", report.Listed)

	newIDs := unprocessedIDs(submissions, processed)
	report.New = len(newIDs)
	if len(newIDs) == 0 {
		s.logger.Info(ctx, "no new submissions to process")
		report.Duration = time.Since(start)
		return report, nil
	}
	s.logger.Info(ctx, "new submissions to process", "count", report.New)

	runErr := s.processAll(ctx, newIDs, processed, report)

	// The checkpoint is written even when the run was interrupted, so the
	// save must not inherit the cancellation.
	if err := s.state.Save(context.WithoutCancel(ctx), processed); err != nil {
		s.logger.Error(ctx, "failed to save state", "error", err)
		return report, fmt.Errorf("save state: %w", err)
	}
	report.Duration = time.Since(start)
	s.logger.Info(ctx, "sync completed",
		"run_id", report.RunID,
		"written", report.Written,
		"filtered", report.Filtered,
		"failed", report.Failed,
		"duration", report.Duration)

	s.notify(ctx, report)
	return report, runErr
}

// processAll visits ids oldest first. The lister returns newest first.
func (s *Sync) processAll(ctx context.Context, ids []string, processed *model.ProcessedSet, report *model.SyncReport) error {
	for i := len(ids) - 1; i >= 0; i-- {
		if i != len(ids)-1 {
			if err := s.pacer.Wait(ctx, s.detailDelay); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		s.processOne(ctx, ids[i], processed, report)
	}
	return nil
}

func (s *Sync) processOne(ctx context.Context, id string, processed *model.ProcessedSet, report *model.SyncReport) {
	s.logger.Info(ctx, "fetching submission detail", "id", id)

	detail, err := s.fetcher.FetchDetail(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info(ctx, "no detail for submission, skipping", "id", id)
		report.Failed++
		return
	}
	if err != nil {
		s.logger.Error(ctx, "error fetching detail", "error", &model.DetailFetchError{ID: id, Err: err})
		report.Failed++
		return
	}

	if s.onlyAccepted && !detail.Accepted() {
		s.logger.Info(ctx, "skipping submission", "id", id, "status", detail.Status)
		processed.Add(id)
		report.Filtered++
		return
	}

	path, err := s.writer.Write(ctx, detail)
	if err != nil {
		s.logger.Error(ctx, "failed to write submission", "id", id, "error", err)
		report.Failed++
		return
	}

	s.logger.Info(ctx, "saved", "path", path)
	processed.Add(id)
	report.Written++
	report.Paths = append(report.Paths, path)
}

func (s *Sync) notify(ctx context.Context, report *model.SyncReport) {
	if s.notifier == nil || report.Written == 0 {
		return
	}
	if err := s.notifier.Send(ctx, buildNotification(s.username, report)); err != nil {
		s.logger.Error(ctx, "failed to send sync report", "error", err)
	}
}

// unprocessedIDs keeps the lister's order and drops duplicates.
func unprocessedIDs(submissions []model.SubmissionSummary, processed *model.ProcessedSet) []string {
	ids := make([]string, 0, len(submissions))
	seen := make(map[string]struct{}, len(submissions))
	for _, sub := range submissions {
		if sub.ID == "" || processed.Has(sub.ID) {
			continue
		}
		if _, ok := seen[sub.ID]; ok {
			continue
		}
		seen[sub.ID] = struct{}{}
		ids = append(ids, sub.ID)
	}
	return ids
}

func buildNotification(username string, report *model.SyncReport) model.Notification {
	fields := []model.NotificationField{
		{Name: "Written", Value: fmt.Sprintf("%d", report.Written), Inline: true},
		{Name: "Skipped", Value: fmt.Sprintf("%d", report.Filtered), Inline: true},
		{Name: "Failed", Value: fmt.Sprintf("%d", report.Failed), Inline: true},
	}
	if len(report.Paths) > 0 {
		fields = append(fields, model.NotificationField{
			Name:  "Files",
			Value: formatPaths(report.Paths, 10),
		})
	}

	return model.Notification{
		Title:       fmt.Sprintf("LeetCode Sync · %s", username),
		Description: fmt.Sprintf("Saved %d new submission(s) in %s.", report.Written, report.Duration.Round(time.Second)),
		Fields:      fields,
		Footer:      "run " + report.RunID,
	}
}

func formatPaths(paths []string, limit int) string {
	shown := paths
	if len(shown) > limit {
		shown = shown[:limit]
	}
	lines := make([]string, 0, len(shown)+1)
	for _, p := range shown {
		lines = append(lines, "`"+p+"`")
	}
	if extra := len(paths) - len(shown); extra > 0 {
		lines = append(lines, fmt.Sprintf("…and %d more", extra))
	}
	return strings.Join(lines, "\n")
}
