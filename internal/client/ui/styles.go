// Package ui holds the lipgloss styles shared by the CLI pages.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// PromptVault palette: yellow accent on dark, like the web client.
	Accent = lipgloss.Color("#FACC15")
	Text   = lipgloss.Color("#FFFFFF")
	Muted  = lipgloss.Color("#9CA3AF")
	Danger = lipgloss.Color("#F87171")
	Good   = lipgloss.Color("#4ADE80")

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			MarginBottom(1)

	CardStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Accent).
			Width(64)

	CardTitleStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	CardBodyStyle = lipgloss.NewStyle().
			Foreground(Text)

	TagStyle = lipgloss.NewStyle().
			Foreground(Accent)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Good)

	InfoKeyStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(12)

	InfoValueStyle = lipgloss.NewStyle().
			Foreground(Text)
)
