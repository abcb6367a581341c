package tui

import (
	"bytes"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/bytecrawl/internal/command"
	"github.com/vvka-141/bytecrawl/internal/session"
)

// RunShell runs the full-screen shell until the player exits.
// screen must be the writer s and its programs print to.
func RunShell(s *session.Session, screen *bytes.Buffer) error {
	model := NewShellModel(s, screen)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("shell failed: %w", err)
	}
	if m, ok := final.(ShellModel); ok && m.Exited() {
		fmt.Println(command.Farewell)
	}
	return nil
}

// OpenLogFile opens path for appending diagnostics while the shell owns
// the terminal.
func OpenLogFile(path string) (*os.File, error) {
	f, err := tea.LogToFile(path, "bytecrawl")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, nil
}
