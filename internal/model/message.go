// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// SENDER TYPE
// =============================================================================

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// String returns the string representation of the sender.
func (s Sender) String() string {
	return string(s)
}

// DisplayName returns a human-readable name for the sender.
func (s Sender) DisplayName() string {
	switch s {
	case SenderUser:
		return "You"
	case SenderAssistant:
		return "MemeLord"
	default:
		return string(s)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is a single transcript entry. Once finalized (Pending == false)
// a message is never mutated; the only in-place change a transcript ever
// performs is replacing a pending placeholder with its finalized form.
type Message struct {
	ID     string `json:"id"`
	Sender Sender `json:"sender"`

	// Text is required unless Pending is true.
	Text string `json:"text,omitempty"`

	// MemeURL is an optional image reference attached to an assistant reply.
	MemeURL string `json:"meme_url,omitempty"`

	// Time is the display-formatted timestamp captured at creation.
	Time string `json:"time"`

	// Pending marks the transient assistant placeholder awaiting a reply.
	// Pending placeholders are never persisted.
	Pending bool `json:"-"`
}

// NewUserMessage creates a finalized user message stamped with the current time.
func NewUserMessage(text string) Message {
	return Message{
		ID:     generateID(),
		Sender: SenderUser,
		Text:   text,
		Time:   Clock(),
	}
}

// NewAssistantMessage creates a finalized assistant message stamped with the
// current time. memeURL may be empty.
func NewAssistantMessage(text, memeURL string) Message {
	return Message{
		ID:      generateID(),
		Sender:  SenderAssistant,
		Text:    text,
		MemeURL: memeURL,
		Time:    Clock(),
	}
}

// NewPendingMessage creates the transient assistant placeholder shown while
// a reply is being composed. It carries no text.
func NewPendingMessage() Message {
	return Message{
		ID:      generateID(),
		Sender:  SenderAssistant,
		Time:    Clock(),
		Pending: true,
	}
}

// IsFinalized reports whether the message will never change again.
func (m Message) IsFinalized() bool {
	return !m.Pending
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// Clock returns the current wall-clock time formatted for display,
// mirroring an hour:minute locale time string.
func Clock() string {
	return time.Now().Format("03:04 PM")
}

// generateID creates a unique message ID.
func generateID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return "msg_" + hex.EncodeToString(bytes)
}
