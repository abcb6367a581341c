// Package command parses player input into commands and executes them
// against a session.
package command

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// Verb identifies what a command does.
type Verb int

const (
	VerbNone Verb = iota
	VerbCd
	VerbLs
	VerbPwd
	VerbClear
	VerbExit
	VerbCat
	VerbRun
	VerbHelp
	VerbDebug
	VerbInvalid
)

var verbNames = map[Verb]string{
	VerbNone:    "none",
	VerbCd:      "cd",
	VerbLs:      "ls",
	VerbPwd:     "pwd",
	VerbClear:   "clear",
	VerbExit:    "exit",
	VerbCat:     "cat",
	VerbRun:     "run",
	VerbHelp:    "help",
	VerbDebug:   "debug",
	VerbInvalid: "invalid",
}

func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Verb(%d)", int(v))
}

// Command is one parsed line of input.
type Command struct {
	Verb Verb

	// Arg is everything after the verb with its spacing preserved, so quoted
	// names containing runs of spaces survive. For VerbRun it starts at the
	// program path, without the leading "./".
	Arg string

	// Err is set for VerbInvalid when the verb was known but used wrongly.
	Err error
}

// Parse turns a raw line into a Command. Debug commands are only
// recognized when allowDebug is set.
func Parse(raw string, allowDebug bool) Command {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Command{Verb: VerbNone}
	}

	word, rest := cutWord(line)

	switch word {
	case "cd":
		return needsArg(VerbCd, rest, "cd <path>")
	case "cat":
		return needsArg(VerbCat, rest, "cat <path>")
	case "ls":
		return noArgs(VerbLs, rest)
	case "pwd":
		return noArgs(VerbPwd, rest)
	case "clear":
		return noArgs(VerbClear, rest)
	case "exit":
		return noArgs(VerbExit, rest)
	case "help":
		return Command{Verb: VerbHelp, Arg: rest}
	case "debug":
		if allowDebug {
			return Command{Verb: VerbDebug, Arg: rest}
		}
	}

	if strings.HasPrefix(word, "./") {
		target := strings.TrimPrefix(line, "./")
		if target == "" {
			return invalid(fmt.Errorf("%w: usage: ./<program> [args...]", bytecrawl.ErrInvalidCommandArguments))
		}
		return Command{Verb: VerbRun, Arg: target}
	}

	return Command{Verb: VerbInvalid}
}

func needsArg(v Verb, rest, usage string) Command {
	if rest == "" {
		return invalid(fmt.Errorf("%w: usage: %s", bytecrawl.ErrInvalidCommandArguments, usage))
	}
	return Command{Verb: v, Arg: rest}
}

func noArgs(v Verb, rest string) Command {
	if rest != "" {
		return invalid(fmt.Errorf("%w: %s takes no arguments", bytecrawl.ErrInvalidCommandArguments, v))
	}
	return Command{Verb: v}
}

func invalid(err error) Command {
	return Command{Verb: VerbInvalid, Err: err}
}

// cutWord splits off the first whitespace-delimited word. rest has its
// leading whitespace removed but is otherwise untouched.
func cutWord(s string) (word, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}
