// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import "strings"

// Filter returns the messages whose text contains query as a
// case-insensitive substring. An empty query returns the input unchanged.
// Messages without text (pending placeholders) are excluded whenever a
// query is active. The result is a view: Filter never mutates or reorders
// its input.
func Filter(messages []Message, query string) []Message {
	if query == "" {
		return messages
	}

	needle := strings.ToLower(query)
	matched := make([]Message, 0, len(messages))
	for _, msg := range messages {
		if msg.Text == "" {
			continue
		}
		if strings.Contains(strings.ToLower(msg.Text), needle) {
			matched = append(matched, msg)
		}
	}
	return matched
}
