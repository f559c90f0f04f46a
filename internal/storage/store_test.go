// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"testing"

	"github.com/memelord/memelord-tui/internal/model"
)

// =============================================================================
// FILE STORE TESTS
// =============================================================================

func TestFileStore_SetGet(t *testing.T) {
	store, err := NewFileStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStoreWithDir failed: %v", err)
	}

	if err := store.Set("darkMode", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, ok := store.Get("darkMode")
	if !ok {
		t.Fatal("expected value to be present")
	}
	if got != "true" {
		t.Errorf("Get = %q, want %q", got, "true")
	}
}

func TestFileStore_MissingKey(t *testing.T) {
	store, err := NewFileStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStoreWithDir failed: %v", err)
	}

	if _, ok := store.Get("nope"); ok {
		t.Error("missing key should read as absent")
	}
}

func TestFileStore_KeySanitized(t *testing.T) {
	store, err := NewFileStoreWithDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStoreWithDir failed: %v", err)
	}

	// A hostile key must not escape the base directory.
	if err := store.Set("../../etc/passwd", "x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := store.Get("../../etc/passwd"); !ok {
		t.Error("sanitized key should round-trip")
	}
}

// =============================================================================
// ADAPTER TESTS
// =============================================================================

func TestAdapter_TranscriptRoundTrip(t *testing.T) {
	adapter := NewAdapter(NewMemStore())

	saved := []model.Message{
		{ID: "msg_1", Sender: model.SenderAssistant, Text: model.WelcomeText, Time: "10:00 AM"},
		{ID: "msg_2", Sender: model.SenderUser, Text: "hi", Time: "10:01 AM"},
		{ID: "msg_3", Sender: model.SenderAssistant, Text: "yo", MemeURL: "http://localhost:8000/memes/a.png", Time: "10:01 AM"},
	}
	adapter.SaveTranscript(saved)

	loaded := adapter.LoadTranscript()
	if len(loaded) != len(saved) {
		t.Fatalf("len = %d, want %d", len(loaded), len(saved))
	}
	for i := range saved {
		if loaded[i].Sender != saved[i].Sender {
			t.Errorf("position %d: Sender = %q, want %q", i, loaded[i].Sender, saved[i].Sender)
		}
		if loaded[i].Text != saved[i].Text {
			t.Errorf("position %d: Text = %q, want %q", i, loaded[i].Text, saved[i].Text)
		}
		if loaded[i].MemeURL != saved[i].MemeURL {
			t.Errorf("position %d: MemeURL = %q, want %q", i, loaded[i].MemeURL, saved[i].MemeURL)
		}
	}
}

func TestAdapter_CorruptTranscriptReadsAsAbsent(t *testing.T) {
	store := NewMemStore()
	store.Set(KeyChatHistory, "{not json")

	adapter := NewAdapter(store)
	if got := adapter.LoadTranscript(); got != nil {
		t.Errorf("corrupt slot should load as nil, got %d messages", len(got))
	}
}

func TestAdapter_DarkModeDefaultsFalse(t *testing.T) {
	adapter := NewAdapter(NewMemStore())
	if adapter.LoadDarkMode() {
		t.Error("darkMode should default to false")
	}
}

func TestAdapter_DarkModeRoundTrip(t *testing.T) {
	adapter := NewAdapter(NewMemStore())

	adapter.SaveDarkMode(true)
	if !adapter.LoadDarkMode() {
		t.Error("expected persisted true")
	}

	adapter.SaveDarkMode(false)
	if adapter.LoadDarkMode() {
		t.Error("expected persisted false")
	}
}

func TestAdapter_CorruptDarkModeDefaultsFalse(t *testing.T) {
	store := NewMemStore()
	store.Set(KeyDarkMode, "maybe")

	adapter := NewAdapter(store)
	if adapter.LoadDarkMode() {
		t.Error("corrupt darkMode slot should default to false")
	}
}

func TestAdapter_SlotsIndependent(t *testing.T) {
	store := NewMemStore()
	adapter := NewAdapter(store)

	adapter.SaveDarkMode(true)
	adapter.SaveTranscript([]model.Message{
		{ID: "msg_1", Sender: model.SenderUser, Text: "hi", Time: "10:00 AM"},
	})

	// Corrupting one slot must not affect the other.
	store.Set(KeyChatHistory, "garbage")
	if adapter.LoadTranscript() != nil {
		t.Error("corrupt transcript should read as nil")
	}
	if !adapter.LoadDarkMode() {
		t.Error("darkMode slot should be unaffected")
	}
}
