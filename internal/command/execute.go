package command

import (
	"fmt"
	"strings"

	"github.com/vvka-141/bytecrawl/internal/session"
	"github.com/vvka-141/bytecrawl/internal/vfs"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// Outcome tells the front-end what to do after a command.
type Outcome int

const (
	// Continue reads the next command.
	Continue Outcome = iota
	// Clear wipes the screen, then continues.
	Clear
	// Exit ends the session.
	Exit
)

type handler func(s *session.Session, arg string) (Outcome, error)

// Executor runs parsed commands against a session.
type Executor struct {
	handlers map[Verb]handler
}

// NewExecutor returns an executor with every verb wired.
func NewExecutor() *Executor {
	return &Executor{handlers: map[Verb]handler{
		VerbCd:    cd,
		VerbLs:    ls,
		VerbPwd:   pwd,
		VerbCat:   cat,
		VerbRun:   run,
		VerbHelp:  help,
		VerbDebug: debug,
		VerbClear: func(*session.Session, string) (Outcome, error) { return Clear, nil },
		VerbExit:  func(*session.Session, string) (Outcome, error) { return Exit, nil },
	}}
}

// Execute runs cmd. Output goes to s.Out; failures are returned and leave
// the session usable.
func (e *Executor) Execute(s *session.Session, cmd Command) (Outcome, error) {
	switch cmd.Verb {
	case VerbNone:
		return Continue, nil
	case VerbInvalid:
		if cmd.Err != nil {
			return Continue, cmd.Err
		}
		return Continue, bytecrawl.ErrUnknownCommand
	}

	h, ok := e.handlers[cmd.Verb]
	if !ok {
		return Continue, fmt.Errorf("%w: %s", bytecrawl.ErrUnknownCommand, cmd.Verb)
	}
	s.Logger.Verbose("dispatch %s %q", cmd.Verb, cmd.Arg)
	return h(s, cmd.Arg)
}

var defaultExecutor = NewExecutor()

// Execute runs cmd with the default executor.
func Execute(s *session.Session, cmd Command) (Outcome, error) {
	return defaultExecutor.Execute(s, cmd)
}

// Dispatch parses line, executes it and refreshes the stats file, which is
// what both front-ends do for every line the player enters.
func Dispatch(s *session.Session, line string) (Outcome, error) {
	outcome, err := Execute(s, Parse(line, s.Debug))
	if syncErr := s.SyncStats(); syncErr != nil {
		s.Logger.Error("%v", syncErr)
		if err == nil {
			err = syncErr
		}
	}
	return outcome, err
}

// singlePath parses arg as exactly one path.
func singlePath(arg string) (string, error) {
	parsed, err := vfs.ParsePathSegment(arg)
	if err != nil {
		return "", err
	}
	if parsed.HasRemainder {
		return "", fmt.Errorf("%w: invalid path, unexpected %q after %q", bytecrawl.ErrInvalidCommandArguments, parsed.Remainder, parsed.Path)
	}
	return parsed.Path, nil
}

func cd(s *session.Session, arg string) (Outcome, error) {
	p, err := singlePath(arg)
	if err != nil {
		return Continue, err
	}
	return Continue, s.FS.Cd(p)
}

func ls(s *session.Session, _ string) (Outcome, error) {
	listing, err := s.FS.Ls()
	if err != nil {
		return Continue, err
	}
	fmt.Fprintln(s.Out, listing)
	return Continue, nil
}

func pwd(s *session.Session, _ string) (Outcome, error) {
	fmt.Fprintln(s.Out, s.FS.Pwd())
	return Continue, nil
}

func cat(s *session.Session, arg string) (Outcome, error) {
	p, err := singlePath(arg)
	if err != nil {
		return Continue, err
	}
	name, text, err := s.FS.Cat(p)
	if err != nil {
		return Continue, err
	}
	fmt.Fprintf(s.Out, "%s:\n%s\n", name, text)
	return Continue, nil
}

// run invokes an Executable, or visits the shop a Shop file points at.
func run(s *session.Session, arg string) (Outcome, error) {
	parsed, err := vfs.ParsePathSegment(arg)
	if err != nil {
		return Continue, err
	}
	var args []string
	if parsed.HasRemainder {
		args = strings.Fields(parsed.Remainder)
	}

	file, err := s.FS.Stat(parsed.Path)
	if err != nil {
		return Continue, err
	}
	if sh, ok := file.Content.(vfs.Shop); ok {
		store, err := s.Shops.Get(sh.Name)
		if err != nil {
			return Continue, err
		}
		s.Logger.Verbose("visit shop %s %v", sh.Name, args)
		return Continue, store.Visit(s.Player, args, s.Out)
	}

	s.Logger.Verbose("run %s %v", parsed.Path, args)
	return Continue, s.FS.Run(parsed.Path, s.Player, args)
}

const helpText = `Commands:
  cd <path>                    - change directories
  ls                           - list contents of current directory
  pwd                          - display the current directory
  clear                        - clear the screen
  cat <path>                   - display the contents of a file
  exit                         - exit the program
  help                         - display this help message
To run an EXEC file, type ./<program name> [args...]
Quote names that contain spaces: cd 'my dir'`

func help(s *session.Session, _ string) (Outcome, error) {
	fmt.Fprintln(s.Out, helpText)
	if s.Debug {
		fmt.Fprintln(s.Out, "Debug commands are enabled, type debug help to list them.")
	}
	return Continue, nil
}
