package tui

import "github.com/charmbracelet/lipgloss"

// Pane and chrome styles. Content styles live in the display package.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	InputTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	focusedBorder = lipgloss.Color("#04B575")
	blurredBorder = lipgloss.Color("#626262")
)

func paneStyle(width, height int, focused bool) lipgloss.Style {
	border := blurredBorder
	if focused {
		border = focusedBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(width, 1)).
		Height(max(height, 1))
}
