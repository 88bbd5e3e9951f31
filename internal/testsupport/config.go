// Package testsupport provides shared fixtures for mediasort tests.
package testsupport

import (
	"testing"

	"mediasort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces the default configuration tuned for tests: no log
// file in the working directory and no empty-directory cleanup unless a
// test opts in.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Logging.File = ""
	cfg.Global.CleanEmptyDirs = false

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithCleanEmptyDirs toggles post-run empty directory removal.
func WithCleanEmptyDirs(enabled bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Global.CleanEmptyDirs = enabled
	}
}

// WithRules replaces the configured rule list.
func WithRules(rules ...config.Rule) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Rules = rules
	}
}

// WithGlobalTemplate overrides the fallback directory template and date format.
func WithGlobalTemplate(template, dateFormat string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Global.DirectoryTemplate = template
		cfg.Global.DateFormat = dateFormat
	}
}
