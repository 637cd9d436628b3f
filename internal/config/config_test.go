package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
source:
  url: "https://app.the-trackr.com/uk-finance/graduate-programmes"
renderer:
  mode: "remote"
  endpoint: "https://chrome.example.com/content"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeTemp(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, 38472, cfg.App.Port)
	assert.Equal(t, cfg.Source.URL, cfg.Source.BaseURL, "base_url falls back to source url")
	assert.Equal(t, 100, cfg.Scrape.InsertBatchSize)
	assert.Equal(t, DefaultCategoryKeywords, cfg.Scrape.CategoryKeywords)
	assert.Equal(t, DefaultSentinelCompanies, cfg.Scrape.SentinelCompanies)
	assert.Equal(t, 60, cfg.Renderer.TimeoutSeconds)

	require.NoError(t, Validate(cfg))
}

func TestValidateRejectsBadConfig(t *testing.T) {
	var cfg Config
	ApplyDefaults(&cfg)

	// no source url
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source.url")

	cfg.Source.URL = "https://example.com/t"
	cfg.Renderer.Mode = "remote"
	cfg.Renderer.Endpoint = ""
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renderer.endpoint")

	cfg.Renderer.Mode = "static"
	cfg.Scrape.Schedule = "not cron"
	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scrape.schedule")
}

func TestEnsureUserConfigCopiesOnce(t *testing.T) {
	dataDir := t.TempDir()
	defaultPath := writeTemp(t, minimalYAML)

	userPath, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), userPath)

	// user edits survive a second bootstrap
	require.NoError(t, os.WriteFile(userPath, []byte("app:\n  port: 9999\n"), 0o644))
	again, err := EnsureUserConfig(dataDir, defaultPath)
	require.NoError(t, err)
	assert.Equal(t, userPath, again)

	b, err := os.ReadFile(again)
	require.NoError(t, err)
	assert.Contains(t, string(b), "9999")
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := Load(writeTemp(t, minimalYAML))
	require.NoError(t, err)

	require.NoError(t, SaveAtomic(path, cfg))
	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
