// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat transcripts to files in portable formats.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/memelord/memelord-tui/internal/model"
	"github.com/memelord/memelord-tui/internal/util"
)

// =============================================================================
// EXPORT INTERFACE
// =============================================================================

// Exporter converts a transcript to a target format.
type Exporter interface {
	// Export renders the transcript and returns the file content.
	Export(messages []model.Message) ([]byte, error)

	// FileExtension returns the output extension (e.g. ".md").
	FileExtension() string
}

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files are written.
	// Default: current working directory.
	OutputDir string

	// IncludeTimestamps includes per-message clock times.
	IncludeTimestamps bool
}

// DefaultOptions returns the default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:         ".",
		IncludeTimestamps: true,
	}
}

// =============================================================================
// EXPORT FUNCTIONS
// =============================================================================

// ExportToFile renders the transcript with the given exporter and writes it
// under opts.OutputDir. Pending placeholders are skipped; only finalized
// messages are exported. Returns the output path.
func ExportToFile(messages []model.Message, exporter Exporter, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	content, err := exporter.Export(finalized(messages))
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	filename := fmt.Sprintf("memelord_chat_%s%s",
		time.Now().Format("20060102_150405"),
		exporter.FileExtension(),
	)
	path := filepath.Join(resolveOutputDir(opts.OutputDir), filename)

	if err := util.AtomicWriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// finalized filters out placeholders that have no text yet.
func finalized(messages []model.Message) []model.Message {
	out := make([]model.Message, 0, len(messages))
	for _, msg := range messages {
		if msg.IsFinalized() {
			out = append(out, msg)
		}
	}
	return out
}

// resolveOutputDir falls back to the working directory when the configured
// directory does not exist.
func resolveOutputDir(dir string) string {
	if dir == "" {
		return "."
	}
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return "."
}
