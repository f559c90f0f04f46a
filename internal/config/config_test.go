// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/memelord/memelord-tui/internal/storage"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.URL != "http://127.0.0.1:8000" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Chat.TypingDelayMs != 1000 {
		t.Errorf("TypingDelayMs = %d, want 1000", cfg.Chat.TypingDelayMs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[server]
url = "http://127.0.0.1:9000"
request_timeout_secs = 10

[chat]
typing_delay_ms = 250

[auth]
identifier = "chaima@gmail.com"
secret_hash = "$2a$10$abcdefghijklmnopqrstuv"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Server.URL != "http://127.0.0.1:9000" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout())
	}
	if cfg.TypingDelay() != 250*time.Millisecond {
		t.Errorf("TypingDelay = %v", cfg.TypingDelay())
	}
	if cfg.Auth.Identifier != "chaima@gmail.com" {
		t.Errorf("Auth.Identifier = %q", cfg.Auth.Identifier)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Server.URL != Default().Server.URL {
		t.Errorf("Server.URL = %q, want default", cfg.Server.URL)
	}
}

func TestLoadFromPath_BadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	os.WriteFile(path, []byte("[server\nbroken"), 0644)

	if _, err := LoadFromPath(path); err == nil {
		t.Error("expected error for broken TOML")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("MEMELORD_SERVER_URL", "http://10.0.0.1:8000")
	t.Setenv("MEMELORD_TYPING_DELAY_MS", "50")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.URL != "http://10.0.0.1:8000" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Chat.TypingDelayMs != 50 {
		t.Errorf("TypingDelayMs = %d, want 50", cfg.Chat.TypingDelayMs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad URL", func(c *Config) { c.Server.URL = "not a url" }, true},
		{"empty URL", func(c *Config) { c.Server.URL = "" }, true},
		{"negative delay", func(c *Config) { c.Chat.TypingDelayMs = -1 }, true},
		{"zero timeout", func(c *Config) { c.Server.RequestTimeoutSecs = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestWatcher_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	os.WriteFile(path, []byte("[chat]\ntyping_delay_ms = 100\n"), 0644)

	reloaded := make(chan *Config, 1)
	w, err := NewWatcher(path, 20*time.Millisecond, func(cfg *Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := w.Watch(); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	os.WriteFile(path, []byte("[chat]\ntyping_delay_ms = 300\n"), 0644)

	select {
	case cfg := <-reloaded:
		if cfg.Chat.TypingDelayMs != 300 {
			t.Errorf("TypingDelayMs = %d, want 300", cfg.Chat.TypingDelayMs)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestStateDir_ExplicitDir(t *testing.T) {
	cfg := Default()
	cfg.Storage.Dir = "/tmp/memelord-state"

	dir, err := cfg.StateDir()
	if err != nil {
		t.Fatalf("StateDir failed: %v", err)
	}
	if dir != "/tmp/memelord-state" {
		t.Errorf("dir = %q, want the configured directory", dir)
	}
}

func TestStateDir_DefaultUnderConfigDir(t *testing.T) {
	cfg := Default()

	dir, err := cfg.StateDir()
	if err != nil {
		t.Fatalf("StateDir failed: %v", err)
	}
	if filepath.Base(dir) != "state" {
		t.Errorf("dir = %q, want a .../state directory", dir)
	}
}

func TestStateDir_BacksFileStore(t *testing.T) {
	cfg := Default()
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "state")

	dir, err := cfg.StateDir()
	if err != nil {
		t.Fatalf("StateDir failed: %v", err)
	}
	store, err := storage.NewFileStoreWithDir(dir)
	if err != nil {
		t.Fatalf("NewFileStoreWithDir failed: %v", err)
	}
	if err := store.Set("darkMode", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, ok := store.Get("darkMode"); !ok || got != "true" {
		t.Errorf("Get = (%q, %v), want (true, true)", got, ok)
	}
}
