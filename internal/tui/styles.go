package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")).
			MarginBottom(1)

	progressLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	progressFillStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#10B981"))

	progressEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			MarginTop(1)

	confirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			MarginTop(1)

	appStyle = lipgloss.NewStyle().
			Padding(1, 2)
)
