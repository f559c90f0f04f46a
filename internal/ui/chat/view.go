// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/memelord/memelord-tui/internal/model"
	"github.com/memelord/memelord-tui/internal/session"
	"github.com/memelord/memelord-tui/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, m.viewport.View())
	if m.searchMode {
		sections = append(sections, m.renderSearchBar())
	}
	sections = append(sections, m.renderInputBar())
	sections = append(sections, m.renderStatusBar())

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.confirmClear {
		return m.overlayConfirm(view)
	}
	return view
}

// renderHeader draws the title bar.
func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("MemeLord") + " " +
		m.theme.HeaderSubtitle.Render("the funniest bot around")
	return m.theme.Header.Width(m.width - 2).Render(title)
}

// refreshViewport re-renders the transcript into the viewport, applying
// the active search filter.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	messages := model.Filter(m.session.Messages(), m.search.Value())
	m.viewport.SetContent(m.renderMessages(messages))
}

// renderMessages draws every message as a labeled bubble.
func (m Model) renderMessages(messages []model.Message) string {
	if len(messages) == 0 {
		return m.theme.SearchNotice.Render("no messages match")
	}

	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}
	return b.String()
}

// renderMessage draws one message: label line, bubble, optional meme link.
func (m Model) renderMessage(msg model.Message) string {
	label := m.theme.SenderLabel.Render(msg.Sender.DisplayName())
	if msg.Time != "" {
		label += " " + m.theme.Timestamp.Render(msg.Time)
	}

	if msg.Pending {
		body := m.spin.View() + " " + m.theme.TypingText.Render("MemeLord is typing")
		return label + "\n" + m.theme.BotBubble.Render(body)
	}

	style := m.bubbleStyle(msg)
	text := msg.Text
	if msg.Sender == model.SenderAssistant && m.renderer != nil &&
		!strings.HasPrefix(msg.Text, session.ErrorPrefix) {
		if rendered, err := m.renderer.Render(msg.Text); err == nil {
			text = strings.TrimRight(rendered, "\n")
		}
	}

	out := label + "\n" + style.Render(text)
	if msg.MemeURL != "" {
		out += "\n" + m.theme.MemeLink.Render(util.TruncateWidth(msg.MemeURL, m.bubbleWidth()))
	}
	return out
}

// bubbleStyle picks the bubble for a message. Failure notices get the
// error treatment so they stand out from normal bot replies.
func (m Model) bubbleStyle(msg model.Message) lipgloss.Style {
	if msg.Sender == model.SenderUser {
		return m.theme.UserBubble
	}
	if strings.HasPrefix(msg.Text, session.ErrorPrefix) {
		return m.theme.ErrorBubble
	}
	return m.theme.BotBubble
}

// renderSearchBar draws the filter input with a match count.
func (m Model) renderSearchBar() string {
	matches := len(model.Filter(m.session.Messages(), m.search.Value()))
	count := m.theme.SearchNotice.Render(fmt.Sprintf(" %d match(es)", matches))
	return m.theme.InputContainer.Render("/ " + m.search.View() + count)
}

// renderInputBar draws the message input. While a send is outstanding the
// input is replaced with a waiting notice so it is visibly disabled.
func (m Model) renderInputBar() string {
	if m.session.InFlight() {
		notice := m.spin.View() + " " + m.theme.TypingText.Render("waiting for MemeLord...")
		return m.theme.InputContainer.Render(notice)
	}
	prompt := m.theme.InputPrompt.Render("> ")
	return m.theme.InputContainer.Render(prompt + m.input.View())
}

// renderStatusBar draws server state, status notes, and shortcuts.
func (m Model) renderStatusBar() string {
	server := m.theme.StatusError.Render("● offline")
	if m.serverUp {
		server = m.theme.StatusOK.Render("● online")
	}

	var hints []string
	for _, b := range m.keys.ShortHelp() {
		hints = append(hints,
			m.theme.ShortcutKey.Render(b.Help().Key)+" "+
				m.theme.ShortcutDesc.Render(b.Help().Desc))
	}
	line := server + "  " + strings.Join(hints, "  ")
	if m.statusNote != "" {
		line += "  " + m.theme.SearchNotice.Render(util.TruncateWidth(m.statusNote, m.width/2))
	}
	return m.theme.StatusBar.Width(m.width).Render(line)
}

// overlayConfirm centers the clear-chat confirmation over the view.
func (m Model) overlayConfirm(_ string) string {
	box := m.theme.ConfirmBox.Render(
		m.theme.ConfirmTitle.Render("Clear chat history?") + "\n\n" +
			"This wipes the saved transcript.\n\n" +
			m.theme.ShortcutKey.Render("y") + m.theme.ShortcutDesc.Render(" yes  ") +
			m.theme.ShortcutKey.Render("n") + m.theme.ShortcutDesc.Render(" no"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
