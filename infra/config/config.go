package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Strategy names accepted for the comment loader.
const (
	StrategyShallow = "shallow"
	StrategyBulk    = "bulk"
)

// Config holds application-level configuration.
type Config struct {
	FirebaseURL string        // Per-item API host
	AlgoliaURL  string        // Bulk subtree API host
	PageSize    int           // Top-level comments revealed per load
	Strategy    string        // StrategyShallow or StrategyBulk
	HTTPTimeout time.Duration
	StoryLimit  int  // Front-page window size
	Debug       bool // Log to file when set
}

// Load reads configuration from ~/.config/terminalhn/config.yaml,
// overridable via TERMINALHN_* environment variables. All keys have
// working defaults; a missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "terminalhn"))
	}
	v.SetEnvPrefix("TERMINALHN")
	v.AutomaticEnv()

	v.SetDefault("firebase_url", "https://hacker-news.firebaseio.com")
	v.SetDefault("algolia_url", "https://hn.algolia.com")
	v.SetDefault("page_size", 10)
	v.SetDefault("strategy", StrategyShallow)
	v.SetDefault("http_timeout_seconds", 15)
	v.SetDefault("story_limit", 30)
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Config{
		FirebaseURL: strings.TrimRight(v.GetString("firebase_url"), "/"),
		AlgoliaURL:  strings.TrimRight(v.GetString("algolia_url"), "/"),
		PageSize:    v.GetInt("page_size"),
		Strategy:    v.GetString("strategy"),
		HTTPTimeout: time.Duration(v.GetInt("http_timeout_seconds")) * time.Second,
		StoryLimit:  v.GetInt("story_limit"),
		Debug:       v.GetBool("debug"),
	}

	for _, u := range []string{cfg.FirebaseURL, cfg.AlgoliaURL} {
		parsed, err := url.Parse(u)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return Config{}, fmt.Errorf("invalid API URL %q: must be an absolute URL", u)
		}
	}
	if cfg.PageSize < 1 {
		return Config{}, fmt.Errorf("page_size must be at least 1, got %d", cfg.PageSize)
	}
	switch cfg.Strategy {
	case StrategyShallow, StrategyBulk:
	default:
		return Config{}, fmt.Errorf("invalid strategy %q: must be %q or %q", cfg.Strategy, StrategyShallow, StrategyBulk)
	}

	return cfg, nil
}
