// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/memelord/memelord-tui/internal/memelord"
	"github.com/memelord/memelord-tui/internal/model"
	"github.com/memelord/memelord-tui/internal/storage"
)

// =============================================================================
// TEST DOUBLES
// =============================================================================

// fakeClient is a scriptable ReplyClient.
type fakeClient struct {
	mu    sync.Mutex
	resp  *memelord.ChatResponse
	err   error
	block chan struct{} // when non-nil, Chat blocks until closed
	calls int
}

func (f *fakeClient) Chat(ctx context.Context, message string) (*memelord.ChatResponse, error) {
	f.mu.Lock()
	f.calls++
	block := f.block
	resp, err := f.resp, f.err
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return resp, err
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestManager(t *testing.T, client ReplyClient, opts ...Option) (*Manager, *storage.MemStore) {
	t.Helper()
	store := storage.NewMemStore()
	opts = append([]Option{WithTypingDelay(5 * time.Millisecond)}, opts...)
	m := NewManager(store, client, opts...)
	m.Initialize()
	return m, store
}

// assertInvariants checks the reachable-state invariants: length >= 1 and
// at most one pending message, which must be last.
func assertInvariants(t *testing.T, msgs []model.Message) {
	t.Helper()
	if len(msgs) == 0 {
		t.Fatal("transcript must never be empty")
	}
	pendingCount := 0
	for i, msg := range msgs {
		if msg.Pending {
			pendingCount++
			if i != len(msgs)-1 {
				t.Error("pending placeholder must be the last element")
			}
		}
	}
	if pendingCount > 1 {
		t.Errorf("pending count = %d, want at most 1", pendingCount)
	}
}

// =============================================================================
// INITIALIZE TESTS
// =============================================================================

func TestInitialize_SeedsWelcome(t *testing.T) {
	m, _ := newTestManager(t, &fakeClient{})

	msgs := m.Messages()
	if len(msgs) != 1 {
		t.Fatalf("len = %d, want 1", len(msgs))
	}
	if msgs[0].Sender != model.SenderAssistant {
		t.Error("seed message should come from the assistant")
	}
	if msgs[0].Text != model.WelcomeText {
		t.Errorf("seed text = %q", msgs[0].Text)
	}
	if m.DarkMode() {
		t.Error("darkMode should default to false")
	}
	if m.InFlight() {
		t.Error("no send should be in flight after initialize")
	}
}

func TestInitialize_CorruptStoreFallsBack(t *testing.T) {
	store := storage.NewMemStore()
	store.Set(storage.KeyChatHistory, "{corrupt")
	store.Set(storage.KeyDarkMode, "corrupt")

	m := NewManager(store, &fakeClient{})
	m.Initialize()

	if m.Len() != 1 {
		t.Errorf("Len = %d, want seeded 1", m.Len())
	}
	if m.DarkMode() {
		t.Error("corrupt darkMode should fall back to false")
	}
}

func TestInitialize_RoundTrip(t *testing.T) {
	client := &fakeClient{resp: &memelord.ChatResponse{
		Reply:   "hi",
		MemeURL: "http://localhost:8000/memes/a.png",
	}}
	store := storage.NewMemStore()

	m := NewManager(store, client, WithTypingDelay(0))
	m.Initialize()
	if err := m.SendMessage(context.Background(), "hello"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	before := m.Messages()

	// A fresh manager over the same store reproduces the transcript.
	m2 := NewManager(store, client)
	m2.Initialize()
	after := m2.Messages()

	if len(after) != len(before) {
		t.Fatalf("len = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i].Sender != before[i].Sender {
			t.Errorf("position %d: Sender = %q, want %q", i, after[i].Sender, before[i].Sender)
		}
		if after[i].Text != before[i].Text {
			t.Errorf("position %d: Text = %q, want %q", i, after[i].Text, before[i].Text)
		}
		if after[i].MemeURL != before[i].MemeURL {
			t.Errorf("position %d: MemeURL = %q, want %q", i, after[i].MemeURL, before[i].MemeURL)
		}
	}
}

// =============================================================================
// SEND PROTOCOL TESTS
// =============================================================================

func TestSendMessage_Ordering(t *testing.T) {
	type snapshot struct {
		length  int
		pending bool
	}
	var (
		mu        sync.Mutex
		snapshots []snapshot
	)

	client := &fakeClient{resp: &memelord.ChatResponse{Reply: "hi"}}
	store := storage.NewMemStore()
	var m *Manager
	m = NewManager(store, client,
		WithTypingDelay(5*time.Millisecond),
		WithNotify(func() {
			msgs := m.Messages()
			pending := len(msgs) > 0 && msgs[len(msgs)-1].Pending
			mu.Lock()
			snapshots = append(snapshots, snapshot{length: len(msgs), pending: pending})
			mu.Unlock()
		}),
	)
	m.Initialize()

	if err := m.SendMessage(context.Background(), "hello"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	// Observed transcript lengths over time: n, n+1 (user), n+2 (pending
	// placeholder), n+2 (placeholder replaced, same length). n == 1 here
	// from the seeded welcome.
	want := []snapshot{
		{1, false}, // initialize
		{2, false}, // user message appended
		{3, true},  // placeholder appended
		{3, false}, // placeholder replaced in place
		{3, false}, // cleanup notify
	}
	mu.Lock()
	defer mu.Unlock()
	if len(snapshots) != len(want) {
		t.Fatalf("snapshot count = %d, want %d: %v", len(snapshots), len(want), snapshots)
	}
	for i, w := range want {
		if snapshots[i] != w {
			t.Errorf("snapshot %d = %+v, want %+v", i, snapshots[i], w)
		}
	}
}

func TestSendMessage_Result(t *testing.T) {
	client := &fakeClient{resp: &memelord.ChatResponse{
		Reply:   "here's a joke",
		MemeURL: "http://localhost:8000/memes/b.png",
	}}
	m, _ := newTestManager(t, client)

	if err := m.SendMessage(context.Background(), "  tell me a joke  "); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	msgs := m.Messages()
	assertInvariants(t, msgs)
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}

	user := msgs[1]
	if user.Sender != model.SenderUser || user.Text != "tell me a joke" {
		t.Errorf("user message = %+v (input should be trimmed)", user)
	}

	reply := msgs[2]
	if reply.Sender != model.SenderAssistant {
		t.Error("reply should come from the assistant")
	}
	if reply.Text != "here's a joke" {
		t.Errorf("reply text = %q", reply.Text)
	}
	if reply.MemeURL != "http://localhost:8000/memes/b.png" {
		t.Errorf("reply MemeURL = %q", reply.MemeURL)
	}
	if reply.Pending {
		t.Error("reply must be finalized")
	}
	if m.InFlight() {
		t.Error("inFlight must clear after the send completes")
	}
	if m.Phase() != PhaseIdle {
		t.Errorf("phase = %v, want idle", m.Phase())
	}
}

func TestSendMessage_TypingDelayHonored(t *testing.T) {
	const delay = 60 * time.Millisecond
	client := &fakeClient{resp: &memelord.ChatResponse{Reply: "quick"}}
	m, _ := newTestManager(t, client, WithTypingDelay(delay))

	start := time.Now()
	if err := m.SendMessage(context.Background(), "hi"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < delay {
		t.Errorf("send completed in %v, placeholder must stay visible for at least %v", elapsed, delay)
	}
}

func TestSendMessage_EmptyInputIgnored(t *testing.T) {
	client := &fakeClient{resp: &memelord.ChatResponse{Reply: "hi"}}
	m, _ := newTestManager(t, client)

	for _, input := range []string{"", "   ", "\t\n"} {
		if err := m.SendMessage(context.Background(), input); err != nil {
			t.Errorf("SendMessage(%q) = %v, want silent nil", input, err)
		}
	}

	if m.Len() != 1 {
		t.Errorf("Len = %d, transcript must be untouched", m.Len())
	}
	if client.callCount() != 0 {
		t.Errorf("client calls = %d, want 0", client.callCount())
	}
	if m.InFlight() {
		t.Error("inFlight must stay false")
	}
}

func TestSendMessage_Failure(t *testing.T) {
	client := &fakeClient{err: errors.New("connection refused")}
	m, _ := newTestManager(t, client)

	if err := m.SendMessage(context.Background(), "x"); err != nil {
		t.Fatalf("SendMessage propagated remote failure: %v", err)
	}

	msgs := m.Messages()
	assertInvariants(t, msgs)
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3 (welcome, user, failure notice)", len(msgs))
	}

	notice := msgs[2]
	if notice.Sender != model.SenderAssistant {
		t.Error("failure notice should come from the assistant")
	}
	if !strings.HasPrefix(notice.Text, ErrorPrefix) {
		t.Errorf("notice = %q, want %q prefix", notice.Text, ErrorPrefix)
	}
	if !strings.Contains(notice.Text, "connection refused") {
		t.Errorf("notice = %q, want embedded error description", notice.Text)
	}
	for _, msg := range msgs {
		if msg.Pending {
			t.Error("no message may be left pending on the failure path")
		}
	}
	if m.InFlight() {
		t.Error("inFlight must clear on the failure path")
	}
}

func TestSendMessage_EmptyReplyDegrades(t *testing.T) {
	client := &fakeClient{resp: &memelord.ChatResponse{Reply: "   "}}
	m, _ := newTestManager(t, client)

	if err := m.SendMessage(context.Background(), "hi"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	msgs := m.Messages()
	if msgs[len(msgs)-1].Text != FallbackReplyText {
		t.Errorf("empty reply should degrade to fallback, got %q", msgs[len(msgs)-1].Text)
	}
}

func TestSendMessage_BusyRejected(t *testing.T) {
	block := make(chan struct{})
	client := &fakeClient{resp: &memelord.ChatResponse{Reply: "hi"}, block: block}
	m, _ := newTestManager(t, client)

	done := make(chan struct{})
	go func() {
		defer close(done)
		m.SendMessage(context.Background(), "first")
	}()

	// Wait for the first send to become outstanding.
	deadline := time.Now().Add(2 * time.Second)
	for !m.InFlight() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for inFlight")
		}
		time.Sleep(time.Millisecond)
	}

	if err := m.SendMessage(context.Background(), "second"); err != ErrBusy {
		t.Errorf("concurrent send = %v, want ErrBusy", err)
	}

	close(block)
	<-done

	// Only the first send reached the client or the transcript.
	if client.callCount() != 1 {
		t.Errorf("client calls = %d, want 1", client.callCount())
	}
	assertInvariants(t, m.Messages())
}

// =============================================================================
// CLEAR AND PREFERENCE TESTS
// =============================================================================

func TestClear(t *testing.T) {
	client := &fakeClient{resp: &memelord.ChatResponse{Reply: "hi"}}
	store := storage.NewMemStore()
	m := NewManager(store, client, WithTypingDelay(0))
	m.Initialize()

	m.SendMessage(context.Background(), "one")
	m.SendMessage(context.Background(), "two")
	if m.Len() <= 1 {
		t.Fatal("expected a grown transcript before clear")
	}

	m.Clear()

	msgs := m.Messages()
	if len(msgs) != 1 {
		t.Fatalf("len after clear = %d, want 1", len(msgs))
	}
	if msgs[0].Text != model.ClearedText {
		t.Errorf("seed text = %q, want cleared greeting", msgs[0].Text)
	}

	// The clear is persisted, not just in-memory.
	m2 := NewManager(store, client)
	m2.Initialize()
	if m2.Len() != 1 {
		t.Errorf("restored len = %d, want 1", m2.Len())
	}
}

func TestToggleDarkMode_Idempotence(t *testing.T) {
	store := storage.NewMemStore()
	m := NewManager(store, &fakeClient{})
	m.Initialize()

	original := m.DarkMode()
	lenBefore := m.Len()

	if got := m.ToggleDarkMode(); got == original {
		t.Error("first toggle should flip the preference")
	}
	if got := m.ToggleDarkMode(); got != original {
		t.Error("second toggle should restore the original value")
	}

	// The original value is what ends up persisted.
	if storage.NewAdapter(store).LoadDarkMode() != original {
		t.Error("persisted darkMode should match the original value")
	}
	if m.Len() != lenBefore {
		t.Error("toggling the theme must not touch the transcript")
	}
}
