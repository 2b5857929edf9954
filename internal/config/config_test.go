package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func setCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("LEETCODE_USERNAME", "alice")
	t.Setenv("LEETCODE_SESSION", "session-cookie")
}

func TestLoadDefaults(t *testing.T) {
	setCredentials(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := &Config{
		Username:       "alice",
		Session:        "session-cookie",
		BaseURL:        "https://leetcode.com",
		OnlyAccepted:   true,
		OutputDir:      "leetcode",
		StateFile:      ".leetcode_state.json",
		StateBackend:   BackendJSON,
		StateDB:        ".leetcode_state.db",
		ListingMode:    ListingGraphQL,
		PageSize:       50,
		PageDelay:      200 * time.Millisecond,
		DetailDelay:    400 * time.Millisecond,
		RequestTimeout: 30 * time.Second,
		LogFormat:      "text",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	cases := map[string]struct {
		username string
		session  string
	}{
		"no username": {session: "s"},
		"no session":  {username: "alice"},
		"blank":       {username: "  ", session: "  "},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("LEETCODE_USERNAME", tc.username)
			t.Setenv("LEETCODE_SESSION", tc.session)

			_, err := Load()
			if !errors.Is(err, ErrMissingCredentials) {
				t.Fatalf("expected ErrMissingCredentials, got %v", err)
			}
		})
	}
}

func TestLoadOnlyAcceptedToggle(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"0":     false,
		"true":  true,
		"false": false,
	}

	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			setCredentials(t)
			t.Setenv("ONLY_ACCEPTED", raw)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if cfg.OnlyAccepted != want {
				t.Fatalf("OnlyAccepted = %v, want %v", cfg.OnlyAccepted, want)
			}
		})
	}
}

func TestLoadRejectsNonBooleanOnlyAccepted(t *testing.T) {
	setCredentials(t)
	t.Setenv("ONLY_ACCEPTED", "yes")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestLoadNormalizesValues(t *testing.T) {
	setCredentials(t)
	t.Setenv("LEETCODE_BASE_URL", "http://127.0.0.1:8080/")
	t.Setenv("STATE_BACKEND", "SQLite")
	t.Setenv("LISTING_MODE", " REST ")
	t.Setenv("PAGE_SIZE", "0")
	t.Setenv("DETAIL_DELAY", "-1s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != "http://127.0.0.1:8080" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.StateBackend != BackendSQLite {
		t.Fatalf("StateBackend = %q", cfg.StateBackend)
	}
	if cfg.ListingMode != ListingREST {
		t.Fatalf("ListingMode = %q", cfg.ListingMode)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d", cfg.PageSize)
	}
	if cfg.DetailDelay != 0 {
		t.Fatalf("DetailDelay = %v", cfg.DetailDelay)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	setCredentials(t)
	t.Setenv("STATE_BACKEND", "redis")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "STATE_BACKEND") {
		t.Fatalf("expected backend error, got %v", err)
	}
}

func TestLoadParseError(t *testing.T) {
	setCredentials(t)
	t.Setenv("PAGE_SIZE", "many")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}
