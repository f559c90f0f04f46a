// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/memelord/memelord-tui/internal/export"
	"github.com/memelord/memelord-tui/internal/memelord"
	"github.com/memelord/memelord-tui/internal/session"
	"github.com/memelord/memelord-tui/internal/ui/styles"
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat surface. It renders snapshots
// of the session manager and never mutates transcript state itself; all
// writes go through the manager.
type Model struct {
	session *session.Manager
	client  *memelord.Client
	theme   *styles.Theme
	keys    KeyMap

	viewport viewport.Model
	input    textinput.Model
	search   textinput.Model
	spin     spinner.Model
	renderer *glamour.TermRenderer

	searchMode   bool
	confirmClear bool
	serverUp     bool
	statusNote   string

	exportDir string

	width  int
	height int
	ready  bool
}

// New creates the chat model over an initialized session manager.
func New(sess *session.Manager, client *memelord.Client, theme *styles.Theme, exportDir string) Model {
	input := textinput.New()
	input.Placeholder = "Say something funny..."
	input.PlaceholderStyle = theme.InputPlaceholder
	input.CharLimit = 2000
	input.Focus()

	search := textinput.New()
	search.Placeholder = "search transcript"
	search.PlaceholderStyle = theme.InputPlaceholder
	search.CharLimit = 200

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = theme.Spinner

	m := Model{
		session:   sess,
		client:    client,
		theme:     theme,
		keys:      DefaultKeyMap(),
		input:     input,
		search:    search,
		spin:      spin,
		exportDir: exportDir,
	}
	m.renderer = newRenderer(theme.IsDark, 0)
	return m
}

// newRenderer builds the markdown renderer for assistant bubbles. A nil
// renderer degrades to plain text.
func newRenderer(dark bool, wrap int) *glamour.TermRenderer {
	style := "light"
	if dark {
		style = "dark"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if wrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wrap))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil
	}
	return r
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.checkServerCmd())
}

// SetTheme swaps the theme and rebuilds the markdown renderer.
func (m *Model) SetTheme(theme *styles.Theme) {
	m.theme = theme
	m.spin.Style = theme.Spinner
	m.input.PlaceholderStyle = theme.InputPlaceholder
	m.search.PlaceholderStyle = theme.InputPlaceholder
	m.renderer = newRenderer(theme.IsDark, m.bubbleWidth())
	m.refreshViewport()
}

// =============================================================================
// COMMANDS
// =============================================================================

// sendCmd runs the blocking send protocol off the event loop. Redraws
// arrive through SessionChangedMsg from the manager's notify hook; the
// returned message only carries contract violations.
func (m Model) sendCmd(text string) tea.Cmd {
	sess := m.session
	return func() tea.Msg {
		return SendFinishedMsg{Err: sess.SendMessage(context.Background(), text)}
	}
}

// checkServerCmd probes the reply service for the status bar indicator.
func (m Model) checkServerCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if client == nil {
			return ReachabilityMsg{Up: false}
		}
		return ReachabilityMsg{Up: client.CheckReachable(context.Background()) == nil}
	}
}

// exportCmd writes the transcript to a Markdown file.
func (m Model) exportCmd() tea.Cmd {
	sess := m.session
	opts := &export.Options{OutputDir: m.exportDir, IncludeTimestamps: true}
	return func() tea.Msg {
		path, err := export.ExportToFile(sess.Messages(), export.NewMarkdownExporter(opts), opts)
		return ExportDoneMsg{Path: path, Err: err}
	}
}

// bubbleWidth returns the content width available to a message bubble.
func (m Model) bubbleWidth() int {
	if m.width == 0 {
		return 0
	}
	w := m.width - 12
	if w < 20 {
		w = 20
	}
	return w
}
