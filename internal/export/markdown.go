// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/memelord/memelord-tui/internal/model"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports transcripts to Markdown.
type MarkdownExporter struct {
	options *Options
}

// NewMarkdownExporter creates a Markdown exporter.
func NewMarkdownExporter(opts *Options) *MarkdownExporter {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &MarkdownExporter{options: opts}
}

// Export converts a transcript to Markdown.
func (e *MarkdownExporter) Export(messages []model.Message) ([]byte, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("transcript has no messages")
	}

	var sb strings.Builder

	sb.WriteString("# MemeLord Chat\n\n")
	sb.WriteString(fmt.Sprintf("Exported %s. %d messages.\n\n---\n\n",
		time.Now().Format("2006-01-02 15:04"), len(messages)))

	for _, msg := range messages {
		if e.options.IncludeTimestamps && msg.Time != "" {
			sb.WriteString(fmt.Sprintf("**%s** (%s):\n\n", msg.Sender.DisplayName(), msg.Time))
		} else {
			sb.WriteString(fmt.Sprintf("**%s**:\n\n", msg.Sender.DisplayName()))
		}
		sb.WriteString(msg.Text)
		sb.WriteString("\n")
		if msg.MemeURL != "" {
			sb.WriteString(fmt.Sprintf("\n![meme](%s)\n", msg.MemeURL))
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}
