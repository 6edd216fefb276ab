package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalsearch/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigLayersOverrides(t *testing.T) {
	path := writeConfig(t, `
endpoint = "http://search.internal:9000"
log_level = "debug"

[http]
timeout = "5s"
`)

	cfg, err := loadConfig(overrides{configPath: path}, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://search.internal:9000", cfg.Endpoint)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, time.Duration(cfg.HTTP.Timeout))
	assert.Equal(t, config.DefaultExamples, cfg.Examples)

	cfg, err = loadConfig(overrides{
		configPath:   path,
		endpoint:     "https://api.example.com",
		logLevel:     "warn",
		discardStale: true,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.Endpoint)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.DiscardStale)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(overrides{configPath: filepath.Join(t.TempDir(), "none.toml")}, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultEndpoint, cfg.Endpoint)
}

func TestLoadConfigRejectsBadEndpoint(t *testing.T) {
	_, err := loadConfig(overrides{
		configPath: filepath.Join(t.TempDir(), "none.toml"),
		endpoint:   "ftp://nowhere",
	}, nil)
	assert.Error(t, err)
}

func TestNewSearcherUsesEndpoint(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Endpoint = "http://localhost:8123"

	s, err := newSearcher(cfg)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8123/search?query=a%20b", s.URL("a b"))
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "legalsearch dev\n", out.String())
}

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigShowReadsRootFlags(t *testing.T) {
	path := writeConfig(t, `endpoint = "http://from-file:9000"`)

	out, err := executeRoot(t, "config", "show", "--config", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "http://from-file:9000")
	assert.Contains(t, out, "debug")
}

func TestConfigInitWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := executeRoot(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), config.DefaultEndpoint)

	_, err = executeRoot(t, "config", "init", "--config", path)
	assert.Error(t, err, "existing file is not overwritten without --force")
}
