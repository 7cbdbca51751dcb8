// Package config handles configuration loading and validation for the
// accesstree tools.
package config

import (
	"os"
	"path/filepath"
)

// Config is the configuration for atinspect and the ipc tooling.
type Config struct {
	// Socket is the unix socket path the serve command listens on.
	Socket string `toml:"socket" yaml:"socket" json:"socket"`

	// Database is the SQLite database path used by record and replay.
	Database string `toml:"database" yaml:"database" json:"database"`

	Log    LogConfig    `toml:"log" yaml:"log" json:"log"`
	Replay ReplayConfig `toml:"replay" yaml:"replay" json:"replay"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn or error.
	Level string `toml:"level" yaml:"level" json:"level"`

	// Format is the output format: text or json.
	Format string `toml:"format" yaml:"format" json:"format"`
}

// ReplayConfig configures the replay command.
type ReplayConfig struct {
	// Path is the JSONL update log to replay.
	Path string `toml:"path" yaml:"path" json:"path"`

	// Follow keeps the replay attached to the log, applying updates as
	// they are appended.
	Follow bool `toml:"follow" yaml:"follow" json:"follow"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Socket:   defaultSocketPath(),
		Database: defaultDatabasePath(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func defaultSocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "accesstree.sock")
	}
	return filepath.Join(os.TempDir(), "accesstree.sock")
}

func defaultDatabasePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		homeDir, _ := os.UserHomeDir()
		stateHome = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateHome, "accesstree", "updates.db")
}

// ApplyEnvOverrides applies ACCESSTREE_* environment variables on top of
// the loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("ACCESSTREE_SOCKET"); v != "" {
		c.Socket = v
	}
	if v := os.Getenv("ACCESSTREE_DATABASE"); v != "" {
		c.Database = v
	}
	if v := os.Getenv("ACCESSTREE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ACCESSTREE_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}
