// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the memelord TUI.
//
// The configuration lives at ~/.memelord/config.toml and covers the reply
// service endpoint, session tunables (typing indicator delay), the state
// directory, and the login gate credentials. Environment variables
// (MEMELORD_*) override file values; a missing file yields built-in
// defaults. Watcher reloads the file on change so tunables can be adjusted
// without restarting the session.
package config
