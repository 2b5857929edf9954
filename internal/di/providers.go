package di

import (
	"log/slog"
	"os"

	"leetcode-sync/internal/adapter/discord"
	"leetcode-sync/internal/adapter/filesystem"
	"leetcode-sync/internal/adapter/leetcode"
	"leetcode-sync/internal/adapter/logging"
	"leetcode-sync/internal/adapter/pacing"
	"leetcode-sync/internal/adapter/state"
	"leetcode-sync/internal/config"
	"leetcode-sync/internal/domain/ports"
	"leetcode-sync/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return slog.New(logging.NewHandler(os.Stdout, cfg.LogFormat, slog.LevelInfo))
}

func providePacer() ports.Pacer {
	return pacing.Sleeper{}
}

func provideLeetCodeClient(cfg *config.Config, pacer ports.Pacer, logger ports.Logger) (*leetcode.Client, error) {
	return leetcode.New(leetcode.Options{
		BaseURL:   cfg.BaseURL,
		Session:   cfg.Session,
		CSRFToken: cfg.CSRFToken,
		Timeout:   cfg.RequestTimeout,
		PageSize:  cfg.PageSize,
		PageDelay: cfg.PageDelay,
	}, pacer, logger)
}

func provideLister(cfg *config.Config, client *leetcode.Client) ports.SubmissionLister {
	if cfg.ListingMode == config.ListingREST {
		return leetcode.NewRESTLister(client)
	}
	return client
}

func provideArtifactWriter(cfg *config.Config) ports.ArtifactWriter {
	return filesystem.NewWriter(cfg.OutputDir)
}

func provideStateStore(cfg *config.Config) (ports.StateStore, func(), error) {
	if cfg.StateBackend == config.BackendSQLite {
		store, err := state.OpenSQLite(cfg.StateDB)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	}
	return state.NewJSONStore(cfg.StateFile), func() {}, nil
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	if cfg.DiscordWebhookURL == "" {
		return nil
	}
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger)
}

func provideSyncConfig(cfg *config.Config) usecase.SyncConfig {
	return usecase.SyncConfig{
		Username:     cfg.Username,
		OnlyAccepted: cfg.OnlyAccepted,
		DetailDelay:  cfg.DetailDelay,
	}
}

func provideSchedule(cfg *config.Config) string {
	return cfg.SyncSchedule
}
