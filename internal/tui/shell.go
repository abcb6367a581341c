package tui

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/bytecrawl/internal/command"
	"github.com/vvka-141/bytecrawl/internal/session"
	"github.com/vvka-141/bytecrawl/internal/tui/components"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// ShellModel is the full-screen game shell: scrollback on top, prompt at
// the bottom. Commands run synchronously inside Update.
type ShellModel struct {
	session *session.Session
	screen  *bytes.Buffer

	input     textinput.Model
	completer *components.PathCompleter
	lines     []string

	history []string
	histIdx int
	draft   string

	width  int
	height int
	exited bool

	keys KeyMap
}

// NewShellModel creates the shell for s. Everything written to screen is
// moved into the scrollback after each command.
func NewShellModel(s *session.Session, screen *bytes.Buffer) ShellModel {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 72
	ti.Focus()

	m := ShellModel{
		session:   s,
		screen:    screen,
		input:     ti,
		completer: components.NewPathCompleter(s.FS, false),
		width:     80,
		height:    24,
		keys:      DefaultKeyMap(),
	}
	m.lines = append(m.lines, TitleStyle.Render(command.Greeting(s)))
	m.drain()
	m.setPrompt()
	return m
}

// Init implements tea.Model.
func (m ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.session.FS.Pwd())-4, 10)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exited = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.lines = nil
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Prev):
			m.historyPrev()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.historyNext()
			return m, nil
		case key.Matches(msg, m.keys.Complete):
			m.complete()
			return m, nil
		}
		m.completer.Reset()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ShellModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.lines = append(m.lines, m.input.Prompt+EchoStyle.Render(line))
	m.input.Reset()
	m.completer.Reset()

	if strings.TrimSpace(line) != "" {
		if n := len(m.history); n == 0 || m.history[n-1] != line {
			m.history = append(m.history, line)
		}
		if len(m.history) > bytecrawl.MaxHistory {
			m.history = m.history[len(m.history)-bytecrawl.MaxHistory:]
		}
	}
	m.histIdx = len(m.history)
	m.draft = ""

	outcome, err := command.Dispatch(m.session, line)
	m.drain()
	if err != nil {
		m.lines = append(m.lines, ErrorStyle.Render(err.Error()))
	}
	m.setPrompt()

	switch outcome {
	case command.Clear:
		m.lines = nil
	case command.Exit:
		m.exited = true
		return m, tea.Quit
	}
	m.trim()
	return m, nil
}

// drain moves pending command output into the scrollback.
func (m *ShellModel) drain() {
	if m.screen == nil || m.screen.Len() == 0 {
		return
	}
	text := strings.TrimRight(m.screen.String(), "\n")
	m.screen.Reset()
	m.lines = append(m.lines, strings.Split(text, "\n")...)
}

func (m *ShellModel) trim() {
	if len(m.lines) > bytecrawl.MaxScrollback {
		m.lines = m.lines[len(m.lines)-bytecrawl.MaxScrollback:]
	}
}

func (m *ShellModel) setPrompt() {
	m.input.Prompt = PromptStyle.Render(m.session.FS.Pwd()+">") + " "
}

func (m *ShellModel) historyPrev() {
	if len(m.history) == 0 || m.histIdx == 0 {
		return
	}
	if m.histIdx == len(m.history) {
		m.draft = m.input.Value()
	}
	m.histIdx--
	m.input.SetValue(m.history[m.histIdx])
	m.input.CursorEnd()
}

func (m *ShellModel) historyNext() {
	if m.histIdx >= len(m.history) {
		return
	}
	m.histIdx++
	if m.histIdx == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.histIdx])
	}
	m.input.CursorEnd()
}

// complete replaces the path word under the cursor with its next completion.
// cd only completes directories.
func (m *ShellModel) complete() {
	value := m.input.Value()
	start := wordStart(value)
	head, word := value[:start], value[start:]

	verb, _, _ := strings.Cut(strings.TrimLeft(value, " "), " ")
	m.completer.SetDirsOnly(verb == "cd")

	run := start == 0 && strings.HasPrefix(word, "./")
	if run {
		word = strings.TrimPrefix(word, "./")
	}
	if start == 0 && !run {
		return
	}

	completed := m.completer.Next(word)
	if run {
		completed = "./" + completed
	}
	m.input.SetValue(head + completed)
	m.input.CursorEnd()
}

// wordStart finds where the last word of s begins. An unclosed quote
// starts a word that may contain spaces.
func wordStart(s string) int {
	open := -1
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '\'':
			i++
		case s[i] == '\'' && open < 0:
			open = i
		case s[i] == '\'':
			open = -1
		}
	}
	if open >= 0 {
		if open == 2 && strings.HasPrefix(s, "./") {
			return 0
		}
		return open
	}
	return strings.LastIndex(s, " ") + 1
}

// View implements tea.Model.
func (m ShellModel) View() string {
	visible := m.lines
	if room := m.height - 2; room > 0 && len(visible) > room {
		visible = visible[len(visible)-room:]
	}

	var b strings.Builder
	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.keys.HelpText()))
	return b.String()
}

// Lines returns the scrollback.
func (m ShellModel) Lines() []string {
	return m.lines
}

// Exited reports whether the player left the game.
func (m ShellModel) Exited() bool {
	return m.exited
}
