package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
socket = "/run/at.sock"
database = "/var/lib/at/updates.db"

[log]
level = "debug"
format = "json"

[replay]
path = "updates.jsonl"
follow = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Socket != "/run/at.sock" || cfg.Database != "/var/lib/at/updates.db" {
		t.Errorf("paths = %q, %q", cfg.Socket, cfg.Database)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Replay.Path != "updates.jsonl" || !cfg.Replay.Follow {
		t.Errorf("replay = %+v", cfg.Replay)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
socket: /run/at.sock
log:
  level: warn
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Socket != "/run/at.sock" {
		t.Errorf("socket = %q", cfg.Socket)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	// Unset fields keep their defaults.
	if cfg.Database == "" {
		t.Error("database default missing")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defaults := DefaultConfig()
	if cfg.Log.Level != defaults.Log.Level || cfg.Socket == "" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "config.ini", "socket=/tmp/x")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted an .ini file")
	}
}

func TestValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Socket = ""
	cfg.Log.Level = "loud"
	cfg.Replay.Follow = true

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("error type %T", err)
	}
	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, want := range []string{"socket", "log.level", "replay.path"} {
		if !fields[want] {
			t.Errorf("missing validation error for %s (got %v)", want, err)
		}
	}
	if !strings.Contains(err.Error(), "config: socket") {
		t.Errorf("error string = %q", err.Error())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ACCESSTREE_SOCKET", "/tmp/override.sock")
	t.Setenv("ACCESSTREE_LOG_LEVEL", "error")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Socket != "/tmp/override.sock" {
		t.Errorf("socket = %q", cfg.Socket)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
}
