package di

import (
	"path/filepath"
	"testing"

	"leetcode-sync/internal/adapter/leetcode"
	"leetcode-sync/internal/adapter/state"
	"leetcode-sync/internal/config"
)

func TestProvideListerSelectsBackend(t *testing.T) {
	client, err := leetcode.New(leetcode.Options{Session: "s"}, nil, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, ok := provideLister(&config.Config{ListingMode: config.ListingREST}, client).(*leetcode.RESTLister); !ok {
		t.Fatal("expected REST lister")
	}
	if _, ok := provideLister(&config.Config{ListingMode: config.ListingGraphQL}, client).(*leetcode.Client); !ok {
		t.Fatal("expected GraphQL client")
	}
}

func TestProvideStateStoreSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	store, cleanup, err := provideStateStore(&config.Config{
		StateBackend: config.BackendSQLite,
		StateDB:      filepath.Join(dir, "state.db"),
	})
	if err != nil {
		t.Fatalf("sqlite store: %v", err)
	}
	defer cleanup()
	if _, ok := store.(*state.SQLiteStore); !ok {
		t.Fatalf("expected SQLiteStore, got %T", store)
	}

	store, cleanup2, err := provideStateStore(&config.Config{
		StateBackend: config.BackendJSON,
		StateFile:    filepath.Join(dir, "state.json"),
	})
	if err != nil {
		t.Fatalf("json store: %v", err)
	}
	defer cleanup2()
	if _, ok := store.(*state.JSONStore); !ok {
		t.Fatalf("expected JSONStore, got %T", store)
	}
}

func TestProvideNotifierOptional(t *testing.T) {
	if n := provideNotifier(&config.Config{}, nil); n != nil {
		t.Fatalf("expected nil notifier, got %T", n)
	}
	if n := provideNotifier(&config.Config{DiscordWebhookURL: "http://example.invalid/hook"}, nil); n == nil {
		t.Fatal("expected webhook notifier")
	}
}

func TestInitializeAppRequiresCredentials(t *testing.T) {
	t.Setenv("LEETCODE_USERNAME", "")
	t.Setenv("LEETCODE_SESSION", "")

	if _, _, err := InitializeApp(); err == nil {
		t.Fatal("expected missing credentials error")
	}
}
