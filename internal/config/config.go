// Package config loads engine settings from an optional YAML file,
// falling back to built-in defaults when the file is absent.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultDataDir is where logs and state land when no config overrides it.
const DefaultDataDir = `C:\ProcWarden`

// Config holds all tunables for the engine.
type Config struct {
	// DataDir is the root for the suppression log and other state.
	DataDir string `yaml:"data_dir"`

	// ScanInterval is how often the background scanner refreshes the
	// classified process snapshot.
	ScanInterval time.Duration `yaml:"scan_interval"`

	// OpTimeout bounds each OS-level suppression operation.
	OpTimeout time.Duration `yaml:"op_timeout"`

	// SuppressionLog is the JSONL audit log path. Relative paths are
	// resolved under DataDir.
	SuppressionLog string `yaml:"suppression_log"`

	// IFEOStub is the debugger path written to block launches. It must
	// point at a file that does not exist.
	IFEOStub string `yaml:"ifeo_stub"`

	// Verbose enables debug-level logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the engine's built-in settings.
func Default() Config {
	return Config{}.normalize()
}

// Load reads path and merges it over the defaults. A missing file is not
// an error: defaults apply.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg.normalize(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg.normalize(), nil
		}
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg.normalize(), nil
}

// normalize fills unset fields. IFEOStub derives from DataDir, so it is
// resolved after any override.
func (c Config) normalize() Config {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.ScanInterval <= 0 {
		c.ScanInterval = 5 * time.Second
	}
	if c.OpTimeout <= 0 {
		c.OpTimeout = 10 * time.Second
	}
	if c.SuppressionLog == "" {
		c.SuppressionLog = "suppressions.jsonl"
	}
	if c.IFEOStub == "" {
		c.IFEOStub = filepath.Join(c.DataDir, "blocked.exe")
	}
	return c
}

// LogPath resolves the suppression log location under DataDir.
func (c Config) LogPath() string {
	if filepath.IsAbs(c.SuppressionLog) {
		return c.SuppressionLog
	}
	return filepath.Join(c.DataDir, c.SuppressionLog)
}

// EnsureDataDir creates the state directory if it is missing.
func (c Config) EnsureDataDir() error {
	return errors.Wrapf(os.MkdirAll(c.DataDir, 0o755), "creating data dir %s", c.DataDir)
}
