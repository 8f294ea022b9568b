// Package config handles the optional user configuration for agentstd.
//
// The MCP server itself needs no configuration: the docs root is the docs
// directory colocated with the repository checkout. Config only comes into
// play for the sync mirror (machines running an installed binary without a
// checkout) and remembers which remote the mirror tracks.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/k-f-/agentic-dev-standards/internal/logging"
)

const APP_NAME = "agentstd" // application name used for config directory

// DefaultRemoteURL is the canonical standards repository the sync mirror
// tracks when the user has not pointed it elsewhere (e.g. a private fork).
const DefaultRemoteURL = "https://github.com/k-f-/agentic-dev-standards"

// Config holds user configuration for agentstd.
type Config struct {
	// MirrorDir is where `agentstd sync` keeps the cloned standards repo.
	MirrorDir string `yaml:"mirror_dir"`

	// RemoteURL is the git remote the mirror tracks.
	RemoteURL string `yaml:"remote_url"`

	// Branch is the branch to sync; empty means the remote default.
	Branch string `yaml:"branch,omitempty"`

	Version  string `yaml:"version"`   // Track config version
	InitTime int64  `yaml:"init_time"` // Unix timestamp of first save
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
}

// DefaultMirrorDir returns the default location of the synced standards
// repository under the user's data directory.
func DefaultMirrorDir() string {
	return filepath.Join(xdg.DataHome, APP_NAME, "standards")
}

// Load loads the config from the standard location. When no config file
// exists yet, the defaults are returned rather than an error; every command
// works without prior setup.
func Load() (*Config, error) {
	path, exists := FindConfigFile()
	if !exists {
		logging.Debug("No config file found, using defaults", "path", path)
		cfg := DefaultConfig()
		return &cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads config from a specific path
func LoadFrom(path string) (*Config, error) {
	logging.Debug("Reading config file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Older configs may predate some fields
	if cfg.MirrorDir == "" {
		cfg.MirrorDir = DefaultMirrorDir()
	}
	if cfg.RemoteURL == "" {
		cfg.RemoteURL = DefaultRemoteURL
	}

	return &cfg, nil
}

// FindConfigFile returns the path to the config file, and whether it exists.
func FindConfigFile() (string, bool) {
	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	return path, false
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MirrorDir: DefaultMirrorDir(),
		RemoteURL: DefaultRemoteURL,
		Version:   "1.0",
		InitTime:  0, // Will be set during first save
	}
}

// Save writes the config to the standard location
func (c *Config) Save() error {
	path, _ := FindConfigFile()
	return c.SaveTo(path)
}

// SaveTo writes the config to a specific path
func (c *Config) SaveTo(path string) error {
	if c.InitTime == 0 {
		c.InitTime = time.Now().Unix()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Restrictive permissions; the file may reference private forks
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
