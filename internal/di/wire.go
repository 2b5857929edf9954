//go:build wireinject

package di

import (
	"github.com/google/wire"

	"leetcode-sync/internal/adapter/leetcode"
	"leetcode-sync/internal/adapter/logging"
	"leetcode-sync/internal/app"
	"leetcode-sync/internal/config"
	"leetcode-sync/internal/domain/ports"
	"leetcode-sync/internal/usecase"
)

// InitializeApp wires the application components together. The returned
// cleanup closes the state store.
func InitializeApp() (*app.App, func(), error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		providePacer,
		provideLeetCodeClient,
		wire.Bind(new(ports.SubmissionFetcher), new(*leetcode.Client)),
		provideLister,
		provideArtifactWriter,
		provideStateStore,
		provideNotifier,
		provideSyncConfig,
		usecase.NewSync,
		wire.Bind(new(app.Syncer), new(*usecase.Sync)),
		provideSchedule,
		app.New,
	)
	return nil, nil, nil
}
