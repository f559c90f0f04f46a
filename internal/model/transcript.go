// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import "errors"

// WelcomeText is the seeded assistant greeting shown before any user
// interaction.
const WelcomeText = "Hello! I'm MemeLord, the funniest bot around. How can I make you laugh today?"

// ClearedText is the seeded assistant greeting shown after an explicit clear.
const ClearedText = "Chat history cleared! How can I help you today?"

// Transition errors. Callers that respect the transcript invariants never
// see these; they exist so misuse fails loudly instead of corrupting state.
var (
	ErrPendingExists = errors.New("transcript already has a pending placeholder")
	ErrNoPending     = errors.New("transcript has no pending placeholder")
)

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is the ordered log of chat messages for the current session.
// Insertion order is chronological order is render order.
//
// Invariants, maintained by every method:
//   - the transcript is never empty (a seeded welcome message exists before
//     any user interaction and after a clear)
//   - at most one message has Pending == true, and while present it is the
//     last element
type Transcript struct {
	messages []Message
}

// NewTranscript creates a transcript seeded with a welcome message.
func NewTranscript(welcomeText string) *Transcript {
	return &Transcript{
		messages: []Message{NewAssistantMessage(welcomeText, "")},
	}
}

// Restore creates a transcript from previously persisted messages.
// Pending placeholders are never persisted, so restored messages are all
// finalized; an empty or nil slice falls back to a seeded welcome.
func Restore(messages []Message) *Transcript {
	if len(messages) == 0 {
		return NewTranscript(WelcomeText)
	}
	cp := make([]Message, len(messages))
	copy(cp, messages)
	for i := range cp {
		cp[i].Pending = false
	}
	return &Transcript{messages: cp}
}

// =============================================================================
// NAMED TRANSITIONS
// =============================================================================

// Append adds a finalized message to the end of the transcript.
// It must not be used for placeholders; see BeginPending.
func (t *Transcript) Append(msg Message) {
	msg.Pending = false
	t.messages = append(t.messages, msg)
}

// BeginPending appends the transient assistant placeholder. At most one may
// exist at a time.
func (t *Transcript) BeginPending() error {
	if t.HasPending() {
		return ErrPendingExists
	}
	t.messages = append(t.messages, NewPendingMessage())
	return nil
}

// ResolvePending replaces the trailing placeholder with a finalized
// assistant message carrying the reply text, an optional meme reference,
// and a freshly captured timestamp. The transcript length is unchanged.
func (t *Transcript) ResolvePending(text, memeURL string) error {
	if !t.HasPending() {
		return ErrNoPending
	}
	t.messages[len(t.messages)-1] = NewAssistantMessage(text, memeURL)
	return nil
}

// DropPending removes the trailing placeholder, if any. Used on the failure
// path so no placeholder is ever left pending.
func (t *Transcript) DropPending() {
	if t.HasPending() {
		t.messages = t.messages[:len(t.messages)-1]
	}
}

// Reset replaces the transcript with a single fresh seeded message.
func (t *Transcript) Reset(welcomeText string) {
	t.messages = []Message{NewAssistantMessage(welcomeText, "")}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Messages returns a copy of the transcript in render order.
func (t *Transcript) Messages() []Message {
	cp := make([]Message, len(t.messages))
	copy(cp, t.messages)
	return cp
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recent message. The transcript is never empty, so
// Last is always valid after construction.
func (t *Transcript) Last() Message {
	return t.messages[len(t.messages)-1]
}

// HasPending reports whether a placeholder is awaiting resolution.
func (t *Transcript) HasPending() bool {
	return len(t.messages) > 0 && t.messages[len(t.messages)-1].Pending
}

// Validate checks the transcript invariants. It is used by tests and
// defensive callers; a transcript mutated only through the named
// transitions always validates.
func (t *Transcript) Validate() error {
	if len(t.messages) == 0 {
		return errors.New("transcript is empty")
	}
	for i, msg := range t.messages {
		if msg.Pending && i != len(t.messages)-1 {
			return errors.New("pending placeholder is not the last element")
		}
		if !msg.Pending && msg.Text == "" {
			return errors.New("finalized message has no text")
		}
	}
	return nil
}
