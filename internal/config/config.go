// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for the
// Study Buddy client.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides.
//
// Configuration file locations (in order of precedence):
//   - ~/.studybuddy/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete Study Buddy client configuration.
type Config struct {
	// Backend connection settings
	Backend BackendConfig `toml:"backend"`

	// Drop-folder watcher settings
	Watch WatchConfig `toml:"watch"`

	// Chat export settings
	Export ExportConfig `toml:"export"`

	// UI settings
	UI UIConfig `toml:"ui"`
}

// BackendConfig contains the backend connection configuration.
type BackendConfig struct {
	// URL is the base URL of the study backend
	URL string `toml:"url"`
	// TimeoutSecs is the timeout for quick requests (status, listings)
	TimeoutSecs int `toml:"timeout_secs"`
	// AskTimeoutSecs is the timeout for question answering
	AskTimeoutSecs int `toml:"ask_timeout_secs"`
	// UploadTimeoutSecs is the timeout for document processing
	UploadTimeoutSecs int `toml:"upload_timeout_secs"`
}

// WatchConfig contains the drop-folder watcher configuration.
type WatchConfig struct {
	// Enabled turns the drop-folder watcher on
	Enabled bool `toml:"enabled"`
	// Dir is the folder watched for new study documents
	Dir string `toml:"dir"`
	// UploadsPerMinute caps how fast watched files are pushed to the
	// backend, so dropping a folder of PDFs does not flood it
	UploadsPerMinute int `toml:"uploads_per_minute"`
}

// ExportConfig contains the chat export configuration.
type ExportConfig struct {
	// Dir is the directory exports are written to
	Dir string `toml:"dir"`
	// Format is the default export format: "markdown" or "json"
	Format string `toml:"format"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is "auto", "light", or "dark"
	Theme string `toml:"theme"`
	// ShowSources toggles citation cards under answers
	ShowSources bool `toml:"show_sources"`
	// CompactMode reduces padding for small terminals
	CompactMode bool `toml:"compact_mode"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:               "http://127.0.0.1:8000",
			TimeoutSecs:       10,
			AskTimeoutSecs:    120,
			UploadTimeoutSecs: 120,
		},
		Watch: WatchConfig{
			Enabled:          false,
			Dir:              "",
			UploadsPerMinute: 6,
		},
		Export: ExportConfig{
			Dir:    "exports",
			Format: "markdown",
		},
		UI: UIConfig{
			Theme:       "auto",
			ShowSources: true,
			CompactMode: false,
		},
	}
}

// Timeout returns the quick-request timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSecs) * time.Second
}

// AskTimeout returns the question-answering timeout as a duration.
func (b BackendConfig) AskTimeout() time.Duration {
	return time.Duration(b.AskTimeoutSecs) * time.Second
}

// UploadTimeout returns the document-processing timeout as a duration.
func (b BackendConfig) UploadTimeout() time.Duration {
	return time.Duration(b.UploadTimeoutSecs) * time.Second
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the Study Buddy configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".studybuddy"), nil
}

// ConfigPath returns the path to the TOML configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration file, applies environment overrides, fills
// defaults, and validates. A missing file is not an error; defaults are
// returned.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from an explicit file path. A missing
// file yields defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as TOML to the default path, creating the
// config directory if needed.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies STUDYBUDDY_* environment variables on top of
// the loaded configuration.
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv("STUDYBUDDY_BACKEND_URL"); u != "" {
		c.Backend.URL = u
	}
	if secs := os.Getenv("STUDYBUDDY_TIMEOUT_SECS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			c.Backend.TimeoutSecs = n
		}
	}
	if dir := os.Getenv("STUDYBUDDY_WATCH_DIR"); dir != "" {
		c.Watch.Dir = dir
		c.Watch.Enabled = true
	}
	if dir := os.Getenv("STUDYBUDDY_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}
	if theme := os.Getenv("STUDYBUDDY_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// =============================================================================
// DEFAULTS AND VALIDATION
// =============================================================================

// SetDefaults fills in zero values with defaults.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Backend.URL == "" {
		c.Backend.URL = def.Backend.URL
	}
	if c.Backend.TimeoutSecs <= 0 {
		c.Backend.TimeoutSecs = def.Backend.TimeoutSecs
	}
	if c.Backend.AskTimeoutSecs <= 0 {
		c.Backend.AskTimeoutSecs = def.Backend.AskTimeoutSecs
	}
	if c.Backend.UploadTimeoutSecs <= 0 {
		c.Backend.UploadTimeoutSecs = def.Backend.UploadTimeoutSecs
	}
	if c.Watch.UploadsPerMinute <= 0 {
		c.Watch.UploadsPerMinute = def.Watch.UploadsPerMinute
	}
	if c.Export.Dir == "" {
		c.Export.Dir = def.Export.Dir
	}
	if c.Export.Format == "" {
		c.Export.Format = def.Export.Format
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.Backend.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("backend.url %q is not a valid URL", c.Backend.URL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("backend.url scheme must be http or https, got %q", parsed.Scheme)
	}

	switch c.Export.Format {
	case "markdown", "json":
	default:
		return fmt.Errorf("export.format must be markdown or json, got %q", c.Export.Format)
	}

	switch c.UI.Theme {
	case "auto", "light", "dark":
	default:
		return fmt.Errorf("ui.theme must be auto, light, or dark, got %q", c.UI.Theme)
	}

	if c.Watch.Enabled && c.Watch.Dir == "" {
		return fmt.Errorf("watch.enabled requires watch.dir to be set")
	}
	return nil
}
