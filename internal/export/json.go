// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/memelord/memelord-tui/internal/model"
)

// =============================================================================
// JSON EXPORTER
// =============================================================================

// JSONExporter exports transcripts to JSON. The payload mirrors the
// persisted chat history shape so an export can be re-imported by dropping
// it into the state directory.
type JSONExporter struct {
	options *Options
}

// NewJSONExporter creates a JSON exporter. Options are accepted for
// consistency with other exporters; JSON output always carries the full
// message data.
func NewJSONExporter(opts *Options) *JSONExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &JSONExporter{options: opts}
}

// jsonEnvelope wraps the messages with export metadata.
type jsonEnvelope struct {
	ExportedAt string          `json:"exported_at"`
	Messages   []model.Message `json:"messages"`
}

// Export converts a transcript to indented JSON.
func (e *JSONExporter) Export(messages []model.Message) ([]byte, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("transcript has no messages")
	}
	return json.MarshalIndent(jsonEnvelope{
		ExportedAt: time.Now().Format(time.RFC3339),
		Messages:   messages,
	}, "", "  ")
}

// FileExtension returns the file extension for JSON.
func (e *JSONExporter) FileExtension() string {
	return ".json"
}
