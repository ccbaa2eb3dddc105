package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, "listenAddr: \":9090\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("ListenAddr = %q, want :9090", cfg.ListenAddr)
	}
	if len(cfg.Categories) != 5 {
		t.Fatalf("Categories = %v, want the 5 built-in defaults", cfg.Categories)
	}
	if cfg.Logs.MaxSizeMB != 25 || cfg.Logs.MaxAgeDays != 7 || cfg.Logs.MaxBackups != 5 {
		t.Fatalf("Logs = %+v", cfg.Logs)
	}
}

func TestLoadHonorsExplicitValues(t *testing.T) {
	path := writeConfig(t, `
listenAddr: ":8080"
categories: [1, 48]
logs:
  directory: /var/log/asterixd
  maxSizeMB: 100
  maxAgeDays: 30
  maxBackups: 10
  compress: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[0] != 1 || cfg.Categories[1] != 48 {
		t.Fatalf("Categories = %v", cfg.Categories)
	}
	if cfg.Logs.Directory != "/var/log/asterixd" || !cfg.Logs.Compress {
		t.Fatalf("Logs = %+v", cfg.Logs)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}
