// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package memelord provides the HTTP client for the MemeLord reply service.
package memelord

// ChatRequest is the request body for the /chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the response body from the /chat endpoint.
//
// Reply is required; MemeURL is optional and may be null, which
// deserializes to the empty string.
type ChatResponse struct {
	Reply   string `json:"reply"`
	MemeURL string `json:"meme_url"`
}
