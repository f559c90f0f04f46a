// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the Bubble Tea message types used by the chat
// interface. All message types follow Bubble Tea conventions and are
// immutable.
package chat

import "time"

// =============================================================================
// SESSION MESSAGES
// =============================================================================

// SessionChangedMsg signals that the session manager mutated state. The
// manager's notify hook sends it through the running program so every
// transcript or preference change triggers a redraw.
type SessionChangedMsg struct{}

// SendFinishedMsg signals that a SendMessage call returned. Err carries a
// caller contract violation such as a busy rejection; remote failures are
// already reconciled into the transcript and arrive as nil.
type SendFinishedMsg struct {
	Err error
}

// =============================================================================
// SERVER MESSAGES
// =============================================================================

// ReachabilityMsg reports whether the reply service answered a probe.
type ReachabilityMsg struct {
	Up bool
}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportDoneMsg reports the outcome of a transcript export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg signals that the config file changed on disk and the
// new values were applied.
type ConfigReloadedMsg struct {
	TypingDelay time.Duration
}
