package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[catalog.primary]
name = "Criterion"
cache = "/tmp/criterion.json"

[build]
strategy = "pairwise"

[query]
top_limit = 25
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Criterion", cfg.Catalog.Primary.Name)
	assert.Equal(t, "/tmp/criterion.json", cfg.Catalog.Primary.Cache)
	assert.Equal(t, "pairwise", cfg.Build.Strategy)
	assert.Equal(t, 25, cfg.Query.TopLimit)

	// Untouched sections keep their defaults.
	assert.Equal(t, "Netflix", cfg.Catalog.Secondary.Name)
	assert.Equal(t, "Series_Title", cfg.Catalog.Primary.Columns.Title)
	assert.False(t, cfg.Catalog.Primary.Columns.SplitCast)
	assert.True(t, cfg.Catalog.Secondary.Columns.SplitCast)
	assert.Empty(t, cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "[build\nstrategy ="))
	assert.ErrorContains(t, err, "failed to parse TOML")
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MEMGRAPH_URI", "bolt://graph:7687")
	t.Setenv("CINEGRAPH_STORE", "memgraph")
	t.Setenv("CINEGRAPH_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "bolt://graph:7687", cfg.Memgraph.URI)
	assert.Equal(t, "memgraph", cfg.Store.Backend)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad backend", func(c *Config) { c.Store.Backend = "s3" }},
		{"bad strategy", func(c *Config) { c.Build.Strategy = "magic" }},
		{"zero top limit", func(c *Config) { c.Query.TopLimit = 0 }},
		{"missing cache", func(c *Config) { c.Catalog.Secondary.Cache = "" }},
		{"missing title column", func(c *Config) { c.Catalog.Primary.Columns.Title = "" }},
		{"memgraph without uri", func(c *Config) {
			c.Store.Backend = "memgraph"
			c.Memgraph.URI = ""
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
