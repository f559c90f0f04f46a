// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case SessionChangedMsg:
		m.refreshViewport()
		m.viewport.GotoBottom()
		if m.session.InFlight() {
			return m, m.spin.Tick
		}
		return m, nil

	case SendFinishedMsg:
		if msg.Err != nil {
			m.statusNote = msg.Err.Error()
		}
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.statusNote = fmt.Sprintf("export failed: %v", msg.Err)
		} else {
			m.statusNote = "exported to " + msg.Path
		}
		return m, nil

	case ReachabilityMsg:
		m.serverUp = msg.Up
		return m, nil

	case ConfigReloadedMsg:
		m.session.SetTypingDelay(msg.TypingDelay)
		m.statusNote = "config reloaded"
		return m, nil

	case spinner.TickMsg:
		if !m.session.InFlight() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		m.refreshViewport()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleResize lays out the viewport and input for the new window size.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	headerHeight := 3
	footerHeight := 4 // input bar plus status bar
	if m.searchMode {
		footerHeight++
	}
	vpHeight := msg.Height - headerHeight - footerHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}
	m.input.Width = msg.Width - 6
	m.search.Width = msg.Width - 10
	m.renderer = newRenderer(m.theme.IsDark, m.bubbleWidth())

	m.refreshViewport()
	m.viewport.GotoBottom()
	return m
}

// handleKey routes key presses by interaction mode.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.confirmClear {
		return m.handleConfirmKey(msg)
	}
	if m.searchMode {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.search.SetValue("")
		m.search.Focus()
		m.input.Blur()
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		// The root model rebuilds the theme when the change notification
		// comes back around.
		m.session.ToggleDarkMode()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.confirmClear = true
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down),
		key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirmKey resolves the clear-chat confirmation prompt.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirmClear = false
		m.session.Clear()
		return m, nil
	case "n", "N", "esc":
		m.confirmClear = false
		return m, nil
	}
	return m, nil
}

// handleSearchKey drives the transcript filter.
func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) {
		m.searchMode = false
		m.search.SetValue("")
		m.search.Blur()
		m.input.Focus()
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refreshViewport()
	return m, cmd
}

// submit hands the input text to the session manager. The input surface
// is disabled while a send is outstanding, so a stray Enter is a no-op.
func (m Model) submit() (Model, tea.Cmd) {
	if m.session.InFlight() {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	m.input.SetValue("")
	m.statusNote = ""
	return m, tea.Batch(m.sendCmd(text), m.spin.Tick)
}
