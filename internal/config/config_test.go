package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.ScanInterval)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"data_dir: D:\\warden\nscan_interval: 30s\nverbose: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, `D:\warden`, cfg.DataDir)
	assert.Equal(t, 30*time.Second, cfg.ScanInterval)
	assert.True(t, cfg.Verbose)
	// Untouched fields keep their defaults, resolved against the new dir.
	assert.Equal(t, Default().OpTimeout, cfg.OpTimeout)
	assert.Equal(t, filepath.Join(`D:\warden`, "blocked.exe"), cfg.IFEOStub)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLogPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join(DefaultDataDir, "suppressions.jsonl"), cfg.LogPath())

	cfg.SuppressionLog = filepath.Join(t.TempDir(), "abs.jsonl")
	assert.Equal(t, cfg.SuppressionLog, cfg.LogPath())
}
