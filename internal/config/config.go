package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrMissingCredentials is returned when the LeetCode username or session is not set.
var ErrMissingCredentials = errors.New("LEETCODE_USERNAME and LEETCODE_SESSION are required")

// Config contains runtime configuration values.
type Config struct {
	Username          string        `env:"LEETCODE_USERNAME"`
	Session           string        `env:"LEETCODE_SESSION"`
	CSRFToken         string        `env:"LEETCODE_CSRF_TOKEN"`
	BaseURL           string        `env:"LEETCODE_BASE_URL" envDefault:"https://leetcode.com"`
	// OnlyAccepted accepts strconv.ParseBool values ("1", "0", "true",
	// "false", "t", "f" in any of their cases). Other values such as "yes"
	// fail Load with a parse env error.
	OnlyAccepted      bool          `env:"ONLY_ACCEPTED" envDefault:"true"`
	OutputDir         string        `env:"OUTPUT_DIR" envDefault:"leetcode"`
	StateFile         string        `env:"STATE_FILE" envDefault:".leetcode_state.json"`
	StateBackend      string        `env:"STATE_BACKEND" envDefault:"json"`
	StateDB           string        `env:"STATE_DB" envDefault:".leetcode_state.db"`
	ListingMode       string        `env:"LISTING_MODE" envDefault:"graphql"`
	PageSize          int           `env:"PAGE_SIZE" envDefault:"50"`
	PageDelay         time.Duration `env:"PAGE_DELAY" envDefault:"200ms"`
	DetailDelay       time.Duration `env:"DETAIL_DELAY" envDefault:"400ms"`
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	SyncSchedule      string        `env:"SYNC_SCHEDULE"`
	DiscordWebhookURL string        `env:"DISCORD_WEBHOOK_URL"`
	LogFormat         string        `env:"LOG_FORMAT" envDefault:"text"`
}

const (
	defaultPageSize = 50
	defaultTimeout  = 30 * time.Second

	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	ListingGraphQL = "graphql"
	ListingREST    = "rest"
)

// Load builds a Config from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Username = strings.TrimSpace(cfg.Username)
	cfg.Session = strings.TrimSpace(cfg.Session)
	if cfg.Username == "" || cfg.Session == "" {
		return nil, ErrMissingCredentials
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	cfg.StateBackend = strings.ToLower(strings.TrimSpace(cfg.StateBackend))
	cfg.ListingMode = strings.ToLower(strings.TrimSpace(cfg.ListingMode))

	switch cfg.StateBackend {
	case BackendJSON, BackendSQLite:
	default:
		return nil, fmt.Errorf("unsupported STATE_BACKEND %q", cfg.StateBackend)
	}

	switch cfg.ListingMode {
	case ListingGraphQL, ListingREST:
	default:
		return nil, fmt.Errorf("unsupported LISTING_MODE %q", cfg.ListingMode)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.PageDelay < 0 {
		cfg.PageDelay = 0
	}

	if cfg.DetailDelay < 0 {
		cfg.DetailDelay = 0
	}

	return cfg, nil
}
