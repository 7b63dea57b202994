// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Backend.URL != "http://127.0.0.1:8000" {
		t.Errorf("Backend.URL = %q", cfg.Backend.URL)
	}
	if cfg.Export.Format != "markdown" {
		t.Errorf("Export.Format = %q", cfg.Export.Format)
	}
	if cfg.UI.Theme != "auto" || !cfg.UI.ShowSources {
		t.Errorf("UI = %+v", cfg.UI)
	}
}

func TestLoadFromPath_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[backend]
url = "http://127.0.0.1:9000"
timeout_secs = 5

[watch]
enabled = true
dir = "/tmp/drops"
uploads_per_minute = 2

[export]
format = "json"

[ui]
theme = "dark"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Backend.URL != "http://127.0.0.1:9000" {
		t.Errorf("Backend.URL = %q", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSecs != 5 {
		t.Errorf("TimeoutSecs = %d", cfg.Backend.TimeoutSecs)
	}
	// Unset values still come from defaults
	if cfg.Backend.AskTimeoutSecs != 120 {
		t.Errorf("AskTimeoutSecs = %d, want default 120", cfg.Backend.AskTimeoutSecs)
	}
	if !cfg.Watch.Enabled || cfg.Watch.Dir != "/tmp/drops" || cfg.Watch.UploadsPerMinute != 2 {
		t.Errorf("Watch = %+v", cfg.Watch)
	}
	if cfg.Export.Format != "json" {
		t.Errorf("Export.Format = %q", cfg.Export.Format)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("UI.Theme = %q", cfg.UI.Theme)
	}
}

func TestLoadFromPath_EnvOverrides(t *testing.T) {
	t.Setenv("STUDYBUDDY_BACKEND_URL", "http://10.0.0.2:8000")
	t.Setenv("STUDYBUDDY_THEME", "light")
	t.Setenv("STUDYBUDDY_WATCH_DIR", "/tmp/inbox")

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Backend.URL != "http://10.0.0.2:8000" {
		t.Errorf("Backend.URL = %q", cfg.Backend.URL)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("UI.Theme = %q", cfg.UI.Theme)
	}
	if !cfg.Watch.Enabled || cfg.Watch.Dir != "/tmp/inbox" {
		t.Errorf("watch dir env should enable the watcher, got %+v", cfg.Watch)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad url", func(c *Config) { c.Backend.URL = "not a url" }, true},
		{"bad scheme", func(c *Config) { c.Backend.URL = "ftp://host" }, true},
		{"bad format", func(c *Config) { c.Export.Format = "pdf" }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"watch without dir", func(c *Config) { c.Watch.Enabled = true }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
