package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolate points the default search at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvConfig, "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Log.Level)
	require.False(t, cfg.Log.JSON)
	require.Equal(t, "html", cfg.Render.Format)
	require.False(t, cfg.Render.Strict)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n  json: true\nrender:\n  format: table\n  strict: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Log.JSON)
	require.Equal(t, "table", cfg.Render.Format)
	require.True(t, cfg.Render.Strict)
}

func TestLoadRejectsMissingExplicitPath(t *testing.T) {
	isolate(t)
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Load(missing)
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), missing)

	t.Setenv(EnvConfig, missing)
	_, err = Load("")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadFromDefaultLocation(t *testing.T) {
	isolate(t)
	dir, err := os.UserConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a11yattrs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a11yattrs", "config.yaml"), []byte("render:\n  strict: true\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	require.True(t, cfg.Render.Strict)
}

func TestLoadFromEnvConfigPath(t *testing.T) {
	path := writeConfig(t, "render:\n  format: json\n")
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Render.Format)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "log:\n  level: debug\n")
	t.Setenv("A11YATTRS_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeConfig(t, "log: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "read config")
}
