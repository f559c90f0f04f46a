// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the chat transcript and the send/receive protocol.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/memelord/memelord-tui/internal/memelord"
	"github.com/memelord/memelord-tui/internal/model"
	"github.com/memelord/memelord-tui/internal/storage"
)

// ErrorPrefix marks a failure notice in the transcript. Matches the tone of
// the rest of the bot's voice so failures read in-band.
const ErrorPrefix = "💀 Oops: "

// FallbackReplyText substitutes for a reply the service sent empty. The
// remote is untrusted: absent fields degrade to explicit fallbacks instead
// of raising.
const FallbackReplyText = "...I had a joke, but I lost it. Try me again!"

// ErrBusy is returned when SendMessage is called while a send is already
// outstanding. Callers are expected to gate on InFlight and never see it.
var ErrBusy = errors.New("a send is already in flight")

// =============================================================================
// REQUEST PHASE
// =============================================================================

// Phase tracks the outstanding request as an explicit state machine:
//
//	Idle -> Sent -> AwaitingReply -> Idle
//
// Resolved and Failed both return to Idle; they differ only in which
// transition ran last.
type Phase int

const (
	PhaseIdle          Phase = iota // no outstanding request
	PhaseSent                       // user message appended, request outbound
	PhaseAwaitingReply              // placeholder visible, typing timer running
)

// String returns the phase name for display and tests.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSent:
		return "sent"
	case PhaseAwaitingReply:
		return "awaiting-reply"
	default:
		return "unknown"
	}
}

// =============================================================================
// REPLY CLIENT PORT
// =============================================================================

// ReplyClient is the outbound port to the reply service.
// *memelord.Client satisfies it; tests substitute fakes.
type ReplyClient interface {
	Chat(ctx context.Context, message string) (*memelord.ChatResponse, error)
}

// =============================================================================
// SESSION MANAGER
// =============================================================================

// Manager owns the in-memory transcript, executes the send/receive
// protocol with its typing-placeholder transition, reconciles remote
// failures into visible transcript entries, and persists transcript and
// preference state after every mutation.
//
// All state is guarded by one mutex; SendMessage blocks and is intended to
// run on its own goroutine while the render surface reads snapshots.
type Manager struct {
	mu         sync.Mutex
	transcript *model.Transcript
	store      *storage.Adapter
	client     ReplyClient

	inFlight bool
	phase    Phase
	darkMode bool

	typingDelay time.Duration
	onChange    func()
}

// Option configures a Manager.
type Option func(*Manager)

// WithTypingDelay sets the minimum time the typing indicator stays visible
// after the reply arrives. Zero disables the artificial delay.
func WithTypingDelay(d time.Duration) Option {
	return func(m *Manager) { m.typingDelay = d }
}

// WithNotify sets a callback invoked after every state mutation. The render
// surface subscribes through it. The callback runs outside the manager
// lock and must not call back into the manager synchronously from another
// goroutine while a snapshot is being taken.
func WithNotify(fn func()) Option {
	return func(m *Manager) { m.onChange = fn }
}

// NewManager creates a session manager over a raw store and reply client.
// Call Initialize before use.
func NewManager(store storage.Store, client ReplyClient, opts ...Option) *Manager {
	m := &Manager{
		store:       storage.NewAdapter(store),
		client:      client,
		typingDelay: time.Second,
		phase:       PhaseIdle,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize populates in-memory state from the persistent store. Missing
// or malformed data falls back to a seeded welcome transcript and the
// default (light) theme. No side effects beyond populating state.
func (m *Manager) Initialize() {
	m.mu.Lock()
	m.transcript = model.Restore(m.store.LoadTranscript())
	m.darkMode = m.store.LoadDarkMode()
	m.inFlight = false
	m.phase = PhaseIdle
	m.mu.Unlock()
	m.notify()
}

// =============================================================================
// SNAPSHOTS
// =============================================================================

// Messages returns a copy of the transcript in render order.
func (m *Manager) Messages() []model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transcript.Messages()
}

// InFlight reports whether a send is outstanding. The input surface uses
// it to disable itself; callers must not invoke SendMessage while true.
func (m *Manager) InFlight() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight
}

// Phase returns the current request phase.
func (m *Manager) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// DarkMode returns the current display preference.
func (m *Manager) DarkMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.darkMode
}

// Len returns the transcript length.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transcript.Len()
}

// =============================================================================
// SEND PROTOCOL
// =============================================================================

// SendMessage executes the full send/receive protocol for one user input:
//
//  1. append the finalized user message, stamped now
//  2. persist the transcript
//  3. mark the send in flight
//  4. issue the request to the reply service
//  5. on success, append the typing placeholder
//  6. hold the placeholder for at least the typing delay, then replace it
//     with the finalized reply, stamped at replacement time
//  7. persist the transcript again
//
// Remote failures are converted into a visible failure notice; nothing is
// retried and nothing propagates as an error to the user. In every path
// the in-flight flag clears before return.
//
// Whitespace-only input is rejected silently. Calling while a send is
// outstanding is a caller contract violation and returns ErrBusy without
// touching the transcript.
//
// ctx is the cancellation token for the outbound request and timer; the
// session itself never cancels, it exists so a host can.
func (m *Manager) SendMessage(ctx context.Context, rawText string) error {
	text := strings.TrimSpace(rawText)
	if text == "" {
		return nil
	}

	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return ErrBusy
	}
	m.transcript.Append(model.NewUserMessage(text))
	m.store.SaveTranscript(m.transcript.Messages())
	m.inFlight = true
	m.phase = PhaseSent
	m.mu.Unlock()
	m.notify()

	defer func() {
		m.mu.Lock()
		m.inFlight = false
		m.phase = PhaseIdle
		m.mu.Unlock()
		m.notify()
	}()

	resp, err := m.client.Chat(ctx, text)
	if err != nil {
		m.fail(err)
		return nil
	}

	m.beginTyping()
	m.holdTyping(ctx)
	m.resolve(resp)
	return nil
}

// beginTyping appends the placeholder that renders the composing indicator.
func (m *Manager) beginTyping() {
	m.mu.Lock()
	// A placeholder cannot already exist: inFlight gates concurrent sends.
	_ = m.transcript.BeginPending()
	m.phase = PhaseAwaitingReply
	m.mu.Unlock()
	m.notify()
}

// holdTyping keeps the placeholder visible for the minimum display time so
// the indicator is perceivable even for fast replies. The reply has
// already arrived, so replacement happens at the later of receipt and
// delay expiry by construction.
func (m *Manager) holdTyping(ctx context.Context) {
	if m.typingDelay <= 0 {
		return
	}
	timer := time.NewTimer(m.typingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		// No cancellation primitive today: a cancelled host still sees the
		// placeholder resolved rather than stranded.
	}
}

// resolve replaces the placeholder with the finalized reply and persists.
// The timestamp is captured at replacement so the displayed delay reflects
// real elapsed time.
func (m *Manager) resolve(resp *memelord.ChatResponse) {
	reply := strings.TrimSpace(resp.Reply)
	if reply == "" {
		reply = FallbackReplyText
	}

	m.mu.Lock()
	_ = m.transcript.ResolvePending(reply, resp.MemeURL)
	m.store.SaveTranscript(m.transcript.Messages())
	m.mu.Unlock()
	m.notify()
}

// fail converts a remote failure into a visible assistant message. No
// placeholder is ever left pending on this path.
func (m *Manager) fail(err error) {
	m.mu.Lock()
	m.transcript.DropPending()
	m.transcript.Append(model.NewAssistantMessage(ErrorPrefix+err.Error(), ""))
	m.store.SaveTranscript(m.transcript.Messages())
	m.mu.Unlock()
	m.notify()
}

// =============================================================================
// CLEAR AND PREFERENCES
// =============================================================================

// Clear replaces the transcript with a single fresh welcome message and
// persists immediately. The confirmation gate lives at the UI boundary;
// callers invoke Clear only after the user confirmed.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.transcript.Reset(model.ClearedText)
	m.store.SaveTranscript(m.transcript.Messages())
	m.mu.Unlock()
	m.notify()
}

// ToggleDarkMode flips the display preference, persists it immediately,
// and returns the new value. The transcript is untouched.
func (m *Manager) ToggleDarkMode() bool {
	m.mu.Lock()
	m.darkMode = !m.darkMode
	dark := m.darkMode
	m.store.SaveDarkMode(dark)
	m.mu.Unlock()
	m.notify()
	return dark
}

// SetTypingDelay updates the typing indicator minimum display time.
// Used by config live-reload.
func (m *Manager) SetTypingDelay(d time.Duration) {
	m.mu.Lock()
	m.typingDelay = d
	m.mu.Unlock()
}

// notify invokes the change callback outside the lock.
func (m *Manager) notify() {
	if m.onChange != nil {
		m.onChange()
	}
}
