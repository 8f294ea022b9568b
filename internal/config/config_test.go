package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MirrorDir == "" {
		t.Error("default MirrorDir should not be empty")
	}
	if cfg.RemoteURL != DefaultRemoteURL {
		t.Errorf("RemoteURL = %q, want %q", cfg.RemoteURL, DefaultRemoteURL)
	}
	if cfg.Branch != "" {
		t.Errorf("default Branch should be empty, got %q", cfg.Branch)
	}
	if cfg.InitTime != 0 {
		t.Error("InitTime should be zero until first save")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.RemoteURL = "https://github.com/someone/fork"
	cfg.Branch = "main"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if cfg.InitTime == 0 {
		t.Error("SaveTo should set InitTime on first save")
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if loaded.RemoteURL != cfg.RemoteURL {
		t.Errorf("RemoteURL = %q, want %q", loaded.RemoteURL, cfg.RemoteURL)
	}
	if loaded.Branch != "main" {
		t.Errorf("Branch = %q, want main", loaded.Branch)
	}
	if loaded.InitTime != cfg.InitTime {
		t.Errorf("InitTime = %d, want %d", loaded.InitTime, cfg.InitTime)
	}
}

func TestSaveToFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}
}

func TestLoadFromBackfillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	// A config from an older version without the mirror fields.
	old := "version: \"1.0\"\ninit_time: 12345\n"
	if err := os.WriteFile(path, []byte(old), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.MirrorDir == "" {
		t.Error("missing MirrorDir should be backfilled")
	}
	if cfg.RemoteURL != DefaultRemoteURL {
		t.Errorf("missing RemoteURL should be backfilled, got %q", cfg.RemoteURL)
	}
	if cfg.InitTime != 12345 {
		t.Errorf("InitTime = %d, want 12345", cfg.InitTime)
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("mirror_dir: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom() expected error for invalid yaml")
	}
	if !strings.Contains(err.Error(), "parse") {
		t.Errorf("error should mention parsing: %v", err)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("LoadFrom() expected error for missing file")
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	if !strings.Contains(path, APP_NAME) {
		t.Errorf("ConfigPath() = %q, should contain app name", path)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("ConfigPath() = %q, should end in config.yaml", path)
	}
}
