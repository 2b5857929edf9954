package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"leetcode-sync/internal/domain/model"
	"leetcode-sync/internal/domain/ports"
)

// Syncer runs one sync pass.
type Syncer interface {
	Run(ctx context.Context) (*model.SyncReport, error)
}

// App runs the sync once, or once and then on a cron schedule.
type App struct {
	cron     *cron.Cron
	sync     Syncer
	logger   ports.Logger
	schedule string
}

// New constructs an App instance. An empty schedule means a single run.
func New(sync Syncer, logger ports.Logger, schedule string) *App {
	cl := cronLogger{logger: logger}
	return &App{
		cron:     cron.New(cron.WithLogger(cl), cron.WithChain(cron.SkipIfStillRunning(cl))),
		sync:     sync,
		logger:   logger,
		schedule: schedule,
	}
}

// Run executes the sync. Without a schedule the sync error is returned to
// the caller. With a schedule the sync runs immediately and then on every
// tick until ctx is done; failures are only logged.
func (a *App) Run(ctx context.Context) error {
	if a.schedule == "" {
		_, err := a.sync.Run(ctx)
		return err
	}

	if err := a.scheduleJob(ctx); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first sync immediately")
	if _, err := a.sync.Run(ctx); err != nil {
		a.logger.Error(ctx, "initial sync run failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob(ctx context.Context) error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		if ctx.Err() != nil {
			return
		}
		if _, err := a.sync.Run(ctx); err != nil {
			a.logger.Error(ctx, "scheduled sync run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}
	return nil
}

// cronLogger forwards cron's internal logging to ports.Logger.
type cronLogger struct {
	logger ports.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(context.Background(), "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(context.Background(), "cron: "+msg, append(keysAndValues, "error", err)...)
}
