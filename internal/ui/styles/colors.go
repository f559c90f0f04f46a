// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the MemeLord TUI.
//
// Colors are grouped into explicit light and dark palettes rather than
// adaptive colors: the theme follows the persisted darkMode preference, so
// the user's toggle must win over terminal background detection.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is one complete set of colors for a display mode.
type Palette struct {
	// Accent colors
	Accent     lipgloss.Color // brand, headers, highlights
	AccentSoft lipgloss.Color // secondary accent

	// Semantic colors
	Danger  lipgloss.Color // failure notices
	Success lipgloss.Color // reachable indicator

	// Surfaces
	Surface    lipgloss.Color // main background
	SurfaceDim lipgloss.Color // header/footer background
	Overlay    lipgloss.Color // borders, separators

	// Text
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color

	// Message bubbles
	UserBubbleBg      lipgloss.Color
	UserBubbleFg      lipgloss.Color
	UserBubbleBorder  lipgloss.Color
	BotBubbleBg       lipgloss.Color
	BotBubbleFg       lipgloss.Color
	BotBubbleBorder   lipgloss.Color
	ErrorBubbleBg     lipgloss.Color
	ErrorBubbleFg     lipgloss.Color
	ErrorBubbleBorder lipgloss.Color
}

// LightPalette returns the palette for light mode.
func LightPalette() Palette {
	return Palette{
		Accent:     lipgloss.Color("#7C3AED"),
		AccentSoft: lipgloss.Color("#0891B2"),
		Danger:     lipgloss.Color("#E11D48"),
		Success:    lipgloss.Color("#059669"),

		Surface:    lipgloss.Color("#FFFFFF"),
		SurfaceDim: lipgloss.Color("#F5F5F5"),
		Overlay:    lipgloss.Color("#E5E5E5"),

		TextPrimary:   lipgloss.Color("#1F2937"),
		TextSecondary: lipgloss.Color("#6B7280"),
		TextMuted:     lipgloss.Color("#9CA3AF"),

		UserBubbleBg:     lipgloss.Color("#DBEAFE"),
		UserBubbleFg:     lipgloss.Color("#1E40AF"),
		UserBubbleBorder: lipgloss.Color("#3B82F6"),

		BotBubbleBg:     lipgloss.Color("#F5F3FF"),
		BotBubbleFg:     lipgloss.Color("#5B4B8A"),
		BotBubbleBorder: lipgloss.Color("#C4B5FD"),

		ErrorBubbleBg:     lipgloss.Color("#FEE2E2"),
		ErrorBubbleFg:     lipgloss.Color("#991B1B"),
		ErrorBubbleBorder: lipgloss.Color("#E11D48"),
	}
}

// DarkPalette returns the palette for dark mode.
func DarkPalette() Palette {
	return Palette{
		Accent:     lipgloss.Color("#A78BFA"),
		AccentSoft: lipgloss.Color("#22D3EE"),
		Danger:     lipgloss.Color("#FB7185"),
		Success:    lipgloss.Color("#34D399"),

		Surface:    lipgloss.Color("#1E1E2E"),
		SurfaceDim: lipgloss.Color("#181825"),
		Overlay:    lipgloss.Color("#313244"),

		TextPrimary:   lipgloss.Color("#CDD6F4"),
		TextSecondary: lipgloss.Color("#A6ADC8"),
		TextMuted:     lipgloss.Color("#6C7086"),

		UserBubbleBg:     lipgloss.Color("#1D4ED8"),
		UserBubbleFg:     lipgloss.Color("#E0F2FE"),
		UserBubbleBorder: lipgloss.Color("#3B82F6"),

		BotBubbleBg:     lipgloss.Color("#3B3655"),
		BotBubbleFg:     lipgloss.Color("#E9E4F5"),
		BotBubbleBorder: lipgloss.Color("#A78BFA"),

		ErrorBubbleBg:     lipgloss.Color("#881337"),
		ErrorBubbleFg:     lipgloss.Color("#FECACA"),
		ErrorBubbleBorder: lipgloss.Color("#FB7185"),
	}
}
