// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components for the application, built from one
// palette. Rebuild it with NewTheme whenever the dark-mode preference
// flips.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble   lipgloss.Style
	BotBubble    lipgloss.Style
	ErrorBubble  lipgloss.Style
	SenderLabel  lipgloss.Style
	Timestamp    lipgloss.Style
	MemeLink     lipgloss.Style
	TypingText   lipgloss.Style
	SearchNotice lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	StatusOK     lipgloss.Style
	StatusError  lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// LOGIN AND OVERLAY STYLES
	// ==========================================================================

	LoginBox     lipgloss.Style
	LoginTitle   lipgloss.Style
	LoginError   lipgloss.Style
	ConfirmBox   lipgloss.Style
	ConfirmTitle lipgloss.Style

	// Spinner style for the typing indicator.
	Spinner lipgloss.Style
}

// NewTheme builds a theme for the given display preference. Terminal color
// capability is detected; the light/dark choice is not, it follows the
// persisted preference.
func NewTheme(dark bool) *Theme {
	profile := termenv.ColorProfile()
	t := &Theme{
		IsDark:       dark,
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
	}

	p := LightPalette()
	if dark {
		p = DarkPalette()
	}
	t.initStyles(p)
	return t
}

// initStyles builds every lipgloss style from one palette.
func (t *Theme) initStyles(p Palette) {
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(p.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(p.UserBubbleFg).
		Background(p.UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.UserBubbleBorder).
		Padding(0, 2).
		MarginLeft(4)

	t.BotBubble = lipgloss.NewStyle().
		Foreground(p.BotBubbleFg).
		Background(p.BotBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.BotBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.ErrorBubble = lipgloss.NewStyle().
		Foreground(p.ErrorBubbleFg).
		Background(p.ErrorBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.ErrorBubbleBorder).
		Padding(0, 2).
		MarginRight(4)

	t.SenderLabel = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.AccentSoft)

	t.Timestamp = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.MemeLink = lipgloss.NewStyle().
		Foreground(p.AccentSoft).
		Underline(true)

	t.TypingText = lipgloss.NewStyle().
		Foreground(p.TextSecondary).
		Italic(true)

	t.SearchNotice = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(p.AccentSoft).
		Bold(true)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Italic(true)

	t.StatusBar = lipgloss.NewStyle().
		Background(p.SurfaceDim).
		Foreground(p.TextSecondary).
		Padding(0, 1)

	t.StatusOK = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	t.StatusError = lipgloss.NewStyle().
		Foreground(p.Danger).
		Bold(true)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(p.AccentSoft).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(p.TextMuted)

	t.LoginBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 4)

	t.LoginTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	t.LoginError = lipgloss.NewStyle().
		Foreground(p.Danger)

	t.ConfirmBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(p.Danger).
		Padding(1, 3)

	t.ConfirmTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Danger)

	t.Spinner = lipgloss.NewStyle().
		Foreground(p.Accent)
}
