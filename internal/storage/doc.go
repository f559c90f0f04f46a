// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the persistent key/value store for the memelord TUI.
//
// Two independent slots are persisted:
//
//   - chatHistory: the serialized transcript
//   - darkMode: the serialized display preference
//
// Store is the raw port (Get/Set on strings); FileStore backs it with one
// atomically-written JSON file per key under ~/.memelord/state/, and
// MemStore backs it with a map for tests. Adapter layers the typed slot
// operations on top, degrading to defaults on any read failure and
// swallowing write failures (best-effort local durability, not a database).
package storage
