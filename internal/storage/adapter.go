// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides the persistent key/value store for the memelord TUI.
package storage

import (
	"encoding/json"

	"github.com/memelord/memelord-tui/internal/model"
)

// Persisted slot keys. The two slots have independent lifecycles.
//
// There is no schema versioning: if the message shape ever changes, a
// version tag should be added so "empty" can be told apart from
// "incompatible".
const (
	KeyChatHistory = "chatHistory"
	KeyDarkMode    = "darkMode"
)

// =============================================================================
// TYPED ADAPTER
// =============================================================================

// Adapter reads and writes the two typed slots over a raw Store.
// Reads degrade to documented defaults on missing or corrupt data; writes
// are best-effort and never surface failures to the caller.
type Adapter struct {
	store Store
}

// NewAdapter wraps a raw key/value store.
func NewAdapter(store Store) *Adapter {
	return &Adapter{store: store}
}

// LoadTranscript returns the persisted transcript messages, or nil when the
// slot is missing or does not deserialize.
func (a *Adapter) LoadTranscript() []model.Message {
	raw, ok := a.store.Get(KeyChatHistory)
	if !ok {
		return nil
	}

	var messages []model.Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		// Corrupt slot reads as absent; the caller reseeds.
		return nil
	}
	return messages
}

// SaveTranscript persists the transcript messages. Fire-and-forget:
// serialization or write failures are swallowed.
func (a *Adapter) SaveTranscript(messages []model.Message) {
	data, err := json.Marshal(messages)
	if err != nil {
		return
	}
	_ = a.store.Set(KeyChatHistory, string(data))
}

// LoadDarkMode returns the persisted display preference, defaulting to
// false when no valid value exists.
func (a *Adapter) LoadDarkMode() bool {
	raw, ok := a.store.Get(KeyDarkMode)
	if !ok {
		return false
	}

	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		return false
	}
	return dark
}

// SaveDarkMode persists the display preference. Fire-and-forget.
func (a *Adapter) SaveDarkMode(dark bool) {
	data, err := json.Marshal(dark)
	if err != nil {
		return
	}
	_ = a.store.Set(KeyDarkMode, string(data))
}
