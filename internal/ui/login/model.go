// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package login provides the login view shown before the chat surface.
package login

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/memelord/memelord-tui/internal/auth"
	"github.com/memelord/memelord-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// SuccessMsg signals a completed login. The root model switches to the
// chat view when it arrives.
type SuccessMsg struct {
	Session *auth.Session
}

// =============================================================================
// FIELD FOCUS
// =============================================================================

type field int

const (
	fieldIdentifier field = iota
	fieldSecret
	fieldCount
)

// =============================================================================
// LOGIN MODEL
// =============================================================================

// Model is the Bubble Tea model for the login screen.
type Model struct {
	gate  *auth.Gate
	theme *styles.Theme

	identifier textinput.Model
	secret     textinput.Model
	focus      field
	status     string

	width  int
	height int
}

// New creates the login model.
func New(gate *auth.Gate, theme *styles.Theme) Model {
	identifier := textinput.New()
	identifier.Placeholder = "who are you?"
	identifier.PlaceholderStyle = theme.InputPlaceholder
	identifier.CharLimit = 64
	identifier.Focus()

	secret := textinput.New()
	secret.Placeholder = "secret"
	secret.PlaceholderStyle = theme.InputPlaceholder
	secret.CharLimit = 128
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '*'

	return Model{
		gate:       gate,
		theme:      theme,
		identifier: identifier,
		secret:     secret,
		focus:      fieldIdentifier,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "down", "up":
			m.cycleFocus(msg.String() == "shift+tab" || msg.String() == "up")
			return m, nil
		case "enter":
			return m.attempt()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldIdentifier:
		m.identifier, cmd = m.identifier.Update(msg)
	case fieldSecret:
		m.secret, cmd = m.secret.Update(msg)
	}
	return m, cmd
}

// cycleFocus moves focus between the two fields.
func (m *Model) cycleFocus(backward bool) {
	step := 1
	if backward {
		step = int(fieldCount) - 1
	}
	m.focus = field((int(m.focus) + step) % int(fieldCount))

	if m.focus == fieldIdentifier {
		m.identifier.Focus()
		m.secret.Blur()
	} else {
		m.secret.Focus()
		m.identifier.Blur()
	}
}

// attempt runs the gate check and either emits SuccessMsg or shows the
// failure inline.
func (m Model) attempt() (Model, tea.Cmd) {
	session, err := m.gate.Attempt(m.identifier.Value(), m.secret.Value())
	if err != nil {
		m.status = err.Error()
		m.secret.SetValue("")
		return m, nil
	}
	m.status = ""
	return m, func() tea.Msg { return SuccessMsg{Session: session} }
}

// SetTheme swaps the theme, for live dark-mode changes.
func (m *Model) SetTheme(theme *styles.Theme) {
	m.theme = theme
	m.identifier.PlaceholderStyle = theme.InputPlaceholder
	m.secret.PlaceholderStyle = theme.InputPlaceholder
}

// View implements tea.Model.
func (m Model) View() string {
	t := m.theme

	var body string
	body += t.LoginTitle.Render("MemeLord") + "\n"
	body += t.HeaderSubtitle.Render("the funniest bot around") + "\n\n"
	body += "Identifier\n" + m.identifier.View() + "\n\n"
	body += "Secret\n" + m.secret.View() + "\n"
	if m.status != "" {
		body += "\n" + t.LoginError.Render(m.status) + "\n"
	}
	body += "\n" + t.ShortcutDesc.Render("tab: switch field  enter: log in  ctrl+c: quit")

	box := t.LoginBox.Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
