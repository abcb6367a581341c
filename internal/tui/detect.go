package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode selects the front-end a game session runs in.
type Mode int

const (
	// ModeNonInteractive reads one command per line from stdin.
	ModeNonInteractive Mode = iota
	// ModeInteractive runs the full-screen shell.
	ModeInteractive
)

// EnvNonInteractive forces the line shell when set to "1".
const EnvNonInteractive = "BYTECRAWL_NON_INTERACTIVE"

// environment is what mode detection looks at.
type environment struct {
	getenv     func(string) string
	isTerminal func(fd int) bool
}

// DetectMode picks the full-screen shell only when both stdin and stdout are
// terminals and none of BYTECRAWL_NON_INTERACTIVE=1, CI or NO_COLOR is set.
func DetectMode() Mode {
	return environment{getenv: os.Getenv, isTerminal: term.IsTerminal}.mode()
}

// IsInteractive reports whether DetectMode chose the full-screen shell.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

func (e environment) mode() Mode {
	if e.getenv(EnvNonInteractive) == "1" || e.getenv("CI") != "" || e.getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}
	// The shell reads keys from stdin and redraws on stdout.
	if !e.isTerminal(int(os.Stdin.Fd())) || !e.isTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}
	return ModeInteractive
}
