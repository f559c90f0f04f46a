// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
//
// # Key Types
//
//   - Message: single transcript entry with sender, text, optional meme
//     reference, display timestamp, and the transient pending flag
//   - Transcript: ordered message log with its invariants (never empty,
//     at most one trailing pending placeholder)
//   - Sender: message sender enumeration (user, assistant)
//
// The package also provides Filter, the pure derived view used by
// transcript search.
package model
