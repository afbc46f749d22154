package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("86")  // Cyan
	colorSecondary = lipgloss.Color("240") // Gray
	colorSuccess   = lipgloss.Color("82")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
	colorDanger    = lipgloss.Color("196") // Red
	colorMuted     = lipgloss.Color("245") // Light gray
	colorPartnerA  = lipgloss.Color("75")  // Blue
	colorPartnerB  = lipgloss.Color("176") // Pink
)

// Styles
var (
	// Title bar
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Section headers
	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	// Body copy
	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Bars
	barEmptyStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)
	partnerAStyle = lipgloss.NewStyle().
			Foreground(colorPartnerA)
	partnerBStyle = lipgloss.NewStyle().
			Foreground(colorPartnerB)

	// Form rows
	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Status
	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
	okStyle = lipgloss.NewStyle().
		Foreground(colorSuccess)
	warnStyle = lipgloss.NewStyle().
			Foreground(colorWarning)
)

// burdenColor returns a color for a burden gauge value 0..100.
func burdenColor(v int) lipgloss.Color {
	switch {
	case v >= 70:
		return colorDanger
	case v >= 40:
		return colorWarning
	default:
		return colorSuccess
	}
}
