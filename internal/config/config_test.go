package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 10*time.Minute, cfg.CommandTimeout)
	assert.Equal(t, DependencySkip, cfg.DependencyPolicy)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
assume_defaults = true
command_timeout = "5m"
download_timeout = "90s"
dependency_policy = "abort"
custom_dir = "/tmp/custom"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.AssumeDefaults)
	assert.Equal(t, 5*time.Minute, cfg.CommandTimeout)
	assert.Equal(t, 90*time.Second, cfg.DownloadTimeout)
	assert.Equal(t, DependencyAbort, cfg.DependencyPolicy)
	assert.Equal(t, "/tmp/custom", cfg.CustomDir)
}

func TestLoad_PartialFileKeepsRemainingDefaults(t *testing.T) {
	path := writeConfig(t, `command_timeout = "1m"`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.CommandTimeout)
	assert.Equal(t, 2*time.Minute, cfg.DownloadTimeout)
	assert.False(t, cfg.AssumeDefaults)
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, `command_timeout = "soon"`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_BadPolicy(t *testing.T) {
	path := writeConfig(t, `dependency_policy = "retry"`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_BadTOML(t *testing.T) {
	path := writeConfig(t, `not toml ===`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `assume_defaults = false`)
	t.Setenv(EnvAssumeDefaults, "1")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.AssumeDefaults)
}

func TestLoad_EnvIgnoredWhenUnparsable(t *testing.T) {
	path := writeConfig(t, `assume_defaults = true`)
	t.Setenv(EnvAssumeDefaults, "definitely")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.AssumeDefaults)
}
