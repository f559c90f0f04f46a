// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package memelord provides the HTTP client for the MemeLord reply service.
//
// The wire contract is a single endpoint:
//
//	POST {base}/chat
//	request:  {"message": "<user text>"}
//	response: {"reply": "<assistant text>", "meme_url": "<url>" | null}
//
// meme_url is optional; a missing or null value deserializes to the empty
// string. All transport and protocol failures surface as *ClientError with
// a human-readable description - callers need not distinguish subtypes.
package memelord
