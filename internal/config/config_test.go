package config

import (
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "light" {
		t.Fatalf("Theme = %q, want light", cfg.Appearance.Theme)
	}
	if cfg.TUI.RefreshIntervalSec != 30 || !cfg.TUI.AutoRefresh {
		t.Fatalf("TUI defaults = %+v", cfg.TUI)
	}
	if cfg.Watch.IntervalSec != 60 {
		t.Fatalf("Watch.IntervalSec = %d, want 60", cfg.Watch.IntervalSec)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "dark"
	cfg.General.DataDir = "/srv/tally"
	cfg.TUI.AutoRefresh = false

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Appearance.Theme != "dark" {
		t.Fatalf("Theme = %q, want dark", got.Appearance.Theme)
	}
	if got.General.DataDir != "/srv/tally" {
		t.Fatalf("DataDir = %q", got.General.DataDir)
	}
	if got.TUI.AutoRefresh {
		t.Fatal("AutoRefresh = true, want false")
	}
}

func TestDataDirPrecedence(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("TALLY_DATA_DIR", "")

	var cfg Config
	if got := DataDir(cfg); got != filepath.Join("/xdg/data", "tally") {
		t.Fatalf("DataDir = %q, want XDG fallback", got)
	}

	cfg.General.DataDir = "/configured"
	if got := DataDir(cfg); got != "/configured" {
		t.Fatalf("DataDir = %q, want configured override", got)
	}

	t.Setenv("TALLY_DATA_DIR", "/env-wins")
	if got := DataDir(cfg); got != "/env-wins" {
		t.Fatalf("DataDir = %q, want env override", got)
	}

	if got := DBPath(cfg); got != filepath.Join("/env-wins", "habits.db") {
		t.Fatalf("DBPath = %q", got)
	}
}
