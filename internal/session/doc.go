// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session owns the chat transcript and the send/receive protocol.
//
// Manager is the single writer of transcript state. It executes the send
// protocol (append user message, request, typing placeholder, replacement),
// converts every remote failure into a visible transcript entry, persists
// after each mutation through the storage adapter, and exposes snapshot
// accessors for the render surface. The outstanding request is modeled as
// an explicit phase machine (Idle, Sent, AwaitingReply) so the
// placeholder-replacement step is a named transition rather than an
// implicit slice operation.
package session
