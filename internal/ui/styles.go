package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorDim       = lipgloss.Color("240") // gray
	colorHighlight = lipgloss.Color("11")  // bright yellow
	colorError     = lipgloss.Color("9")   // bright red
	colorBorder    = lipgloss.Color("238") // dark gray

	// Tabs
	styleTab = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 2)

	styleTabActive = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(0, 2).
			Underline(true)

	// Timer
	styleClock = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleCompleted = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	// Notes and report rows
	styleCategory = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleLabel = lipgloss.NewStyle().
			Width(20)

	styleBar = lipgloss.NewStyle().
			Foreground(colorSecondary)

	stylePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// Status bar
	styleStatus = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	styleError = lipgloss.NewStyle().
			Foreground(colorError).
			Padding(0, 1)
)
