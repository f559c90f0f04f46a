// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the memelord TUI.
//
// Configuration sources, in order of precedence:
//   - environment variables (MEMELORD_*)
//   - ~/.memelord/config.toml
//   - built-in defaults
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

// Config is the complete memelord configuration.
type Config struct {
	// Server holds the reply service settings.
	Server ServerConfig `toml:"server"`

	// Chat holds session tunables.
	Chat ChatConfig `toml:"chat"`

	// Storage holds persistence settings.
	Storage StorageConfig `toml:"storage"`

	// Auth holds the login gate settings.
	Auth AuthConfig `toml:"auth"`
}

// ServerConfig contains reply service connection settings.
type ServerConfig struct {
	// URL is the base URL of the reply service.
	URL string `toml:"url"`
	// RequestTimeoutSecs is the per-request timeout in seconds.
	RequestTimeoutSecs int `toml:"request_timeout_secs"`
}

// ChatConfig contains session tunables.
type ChatConfig struct {
	// TypingDelayMs is the minimum time the typing indicator stays visible
	// after a reply arrives, in milliseconds. The indicator is perceivable
	// even for fast replies.
	TypingDelayMs int `toml:"typing_delay_ms"`
}

// StorageConfig contains persistence settings.
type StorageConfig struct {
	// Dir is the state directory. Empty means ~/.memelord/state.
	Dir string `toml:"dir"`
}

// AuthConfig contains login gate settings.
type AuthConfig struct {
	// Identifier is the accepted login identifier.
	Identifier string `toml:"identifier"`
	// SecretHash is the bcrypt hash of the accepted secret. Never the
	// plaintext secret itself.
	SecretHash string `toml:"secret_hash"`
	// MaxAttemptsPerMinute bounds the login attempt rate.
	MaxAttemptsPerMinute int `toml:"max_attempts_per_minute"`
}

// =============================================================================
// DEFAULTS AND PATHS
// =============================================================================

// Default returns the built-in default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:                "http://127.0.0.1:8000",
			RequestTimeoutSecs: 30,
		},
		Chat: ChatConfig{
			TypingDelayMs: 1000,
		},
		Auth: AuthConfig{
			MaxAttemptsPerMinute: 6,
		},
	}
}

// ConfigDir returns the memelord configuration directory.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".memelord"), nil
}

// ConfigPath returns the path of the TOML configuration file.
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

// Load reads the configuration from the default path, falling back to
// defaults when no file exists, then applies environment overrides and
// validates the result.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		// No resolvable home directory; run on defaults.
		cfg := Default()
		cfg.ApplyEnvOverrides()
		return cfg, cfg.Validate()
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from an explicit path. A missing
// file is not an error; it yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
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

// ApplyEnvOverrides applies MEMELORD_* environment variables over the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("MEMELORD_SERVER_URL"); v != "" {
		c.Server.URL = v
	}
	if v := os.Getenv("MEMELORD_TYPING_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Chat.TypingDelayMs = n
		}
	}
	if v := os.Getenv("MEMELORD_STORAGE_DIR"); v != "" {
		c.Storage.Dir = v
	}
	if v := os.Getenv("MEMELORD_AUTH_IDENTIFIER"); v != "" {
		c.Auth.Identifier = v
	}
	if v := os.Getenv("MEMELORD_AUTH_SECRET_HASH"); v != "" {
		c.Auth.SecretHash = v
	}
}

// SetDefaults fills zero values with their defaults.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Server.URL == "" {
		c.Server.URL = def.Server.URL
	}
	if c.Server.RequestTimeoutSecs <= 0 {
		c.Server.RequestTimeoutSecs = def.Server.RequestTimeoutSecs
	}
	if c.Chat.TypingDelayMs < 0 {
		c.Chat.TypingDelayMs = def.Chat.TypingDelayMs
	}
	if c.Auth.MaxAttemptsPerMinute <= 0 {
		c.Auth.MaxAttemptsPerMinute = def.Auth.MaxAttemptsPerMinute
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.url %q is not a valid URL", c.Server.URL)
	}
	if c.Server.RequestTimeoutSecs <= 0 {
		return fmt.Errorf("server.request_timeout_secs must be positive, got %d", c.Server.RequestTimeoutSecs)
	}
	if c.Chat.TypingDelayMs < 0 {
		return fmt.Errorf("chat.typing_delay_ms must not be negative, got %d", c.Chat.TypingDelayMs)
	}
	return nil
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// RequestTimeout returns the per-request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutSecs) * time.Second
}

// TypingDelay returns the typing indicator minimum display time as a
// duration.
func (c *Config) TypingDelay() time.Duration {
	return time.Duration(c.Chat.TypingDelayMs) * time.Millisecond
}

// StateDir returns the storage directory, resolving the default when unset.
func (c *Config) StateDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "state"), nil
}
