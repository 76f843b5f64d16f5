package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TASKQUEST_DATA", "")
	t.Setenv("TASKQUEST_TASKRC", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != filepath.Join(home, ".taskquest") {
		t.Fatalf("data dir=%q", cfg.DataDir)
	}
	if cfg.Taskrc != filepath.Join(home, ".taskrc") {
		t.Fatalf("taskrc=%q", cfg.Taskrc)
	}
	if cfg.LogMode != "dev" || cfg.LogLevel != "warn" {
		t.Fatalf("log defaults=%q/%q", cfg.LogMode, cfg.LogLevel)
	}
	if cfg.Seed != 0 {
		t.Fatalf("seed=%d, want 0", cfg.Seed)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKQUEST_DATA", dir)
	t.Setenv("TASKQUEST_TASKRC", filepath.Join(dir, "rc"))
	t.Setenv("TASKQUEST_SEED", "42")
	t.Setenv("TASKQUEST_LOG_MODE", "prod")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != dir || cfg.Seed != 42 || cfg.LogMode != "prod" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("TASKQUEST_SEED", "not-an-int")

	var cfg Config
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
