package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for the shell screen.
var (
	// Greeting banner
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Prompt shows the current directory
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// Echo of an entered command in the scrollback
	EchoStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
