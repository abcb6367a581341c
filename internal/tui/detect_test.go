package tui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentMode(t *testing.T) {
	stdin, stdout := int(os.Stdin.Fd()), int(os.Stdout.Fd())

	tests := []struct {
		name string
		env  map[string]string
		ttys map[int]bool
		want Mode
	}{
		{"terminal", nil, map[int]bool{stdin: true, stdout: true}, ModeInteractive},
		{"forced line shell", map[string]string{EnvNonInteractive: "1"}, map[int]bool{stdin: true, stdout: true}, ModeNonInteractive},
		{"only 1 forces", map[string]string{EnvNonInteractive: "true"}, map[int]bool{stdin: true, stdout: true}, ModeInteractive},
		{"CI", map[string]string{"CI": "true"}, map[int]bool{stdin: true, stdout: true}, ModeNonInteractive},
		{"NO_COLOR", map[string]string{"NO_COLOR": "1"}, map[int]bool{stdin: true, stdout: true}, ModeNonInteractive},
		{"piped stdin", nil, map[int]bool{stdout: true}, ModeNonInteractive},
		{"redirected stdout", nil, map[int]bool{stdin: true}, ModeNonInteractive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := environment{
				getenv:     func(k string) string { return tt.env[k] },
				isTerminal: func(fd int) bool { return tt.ttys[fd] },
			}
			assert.Equal(t, tt.want, e.mode())
		})
	}
}

func TestIsInteractive_ReturnsFalseWhenForced(t *testing.T) {
	t.Setenv(EnvNonInteractive, "1")
	assert.False(t, IsInteractive())
	assert.Equal(t, ModeNonInteractive, DetectMode())
}
