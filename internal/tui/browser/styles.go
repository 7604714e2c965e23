// ============================================================================
// mLaunch - Command Launcher
// ============================================================================
//
// Package:     browser
// Description: Styles for the shortcut browser
// Author:      Mike Stoffels
// Created:     2025-12-10
// License:     MIT
// ============================================================================

package browser

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette, shared with the other mLaunch terminal output
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorBgSelected = lipgloss.Color("#3B0764") // Purple 950

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	FilterBarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	ListPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	NameStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	CommandStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	SelectedStyle = lipgloss.NewStyle().
			Background(ColorBgSelected).
			Foreground(ColorText).
			Bold(true)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// RenderKeyHint renders a key and its description for the help bar
func RenderKeyHint(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}
