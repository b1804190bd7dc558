// Package testsupport provides shared helpers for package tests: a config
// builder seeded with per-test temp directories and small fixture writers.
package testsupport

import (
	"path/filepath"
	"testing"

	"myepg/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a validated config rooted in a fresh temp directory.
// Hanconv is disabled so tests never depend on conversion dictionaries.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.SourcesFile = filepath.Join(base, "sources.txt")
	cfg.Paths.OutputDir = filepath.Join(base, "output")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Hanconv.Enabled = false

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithStrategy overrides the merge strategy on the test config.
func WithStrategy(strategy string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Merge.Strategy = strategy
	}
}

// WithCompression toggles gzip artifact creation on the test config.
func WithCompression(enabled bool) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Output.Compress = enabled
	}
}
