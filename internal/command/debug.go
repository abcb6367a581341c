package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/bytecrawl/internal/session"
	"github.com/vvka-141/bytecrawl/internal/vfs"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

const debugHelpText = `Debug commands:
  ps <var> <value>             - edit player stats (health, score, bytes)
  mkdir <path>                 - create a directory and any missing parents
  edit <file path> <new text>  - replace a file's content with text
  touch <file path> [text]     - create a new text file with optional text
  rm <file|dir> <path>         - remove a file or directory
  tree [path]                  - show everything below a directory`

func usage(format string, args ...interface{}) error {
	return fmt.Errorf("%w: usage: debug %s", bytecrawl.ErrInvalidCommandArguments, fmt.Sprintf(format, args...))
}

func debug(s *session.Session, arg string) (Outcome, error) {
	sub, rest := cutWord(arg)
	s.Logger.Verbose("debug %s %q", sub, rest)

	switch sub {
	case "":
		return Continue, usage("<subcommand>, try debug help")
	case "help", "?":
		fmt.Fprintln(s.Out, debugHelpText)
		return Continue, nil
	case "ps":
		return Continue, debugPs(s, rest)
	case "mkdir":
		return Continue, debugMkdir(s, rest)
	case "edit":
		return Continue, debugEdit(s, rest)
	case "touch":
		return Continue, debugTouch(s, rest)
	case "rm":
		return Continue, debugRm(s, rest)
	case "tree":
		return Continue, debugTree(s, rest)
	default:
		return Continue, fmt.Errorf("%w: debug %s", bytecrawl.ErrUnknownCommand, sub)
	}
}

func debugPs(s *session.Session, rest string) error {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return usage("ps <var> <value>")
	}
	value, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return fmt.Errorf("%w: invalid value %q", bytecrawl.ErrInvalidCommandArguments, fields[1])
	}
	return s.Player.Set(fields[0], uint32(value))
}

func debugMkdir(s *session.Session, rest string) error {
	if rest == "" {
		return usage("mkdir <path>")
	}
	p, err := singlePath(rest)
	if err != nil {
		return err
	}
	_, err = s.FS.Mkdir(p)
	return err
}

func debugEdit(s *session.Session, rest string) error {
	if rest == "" {
		return usage("edit <file path> <new text>")
	}
	parsed, err := vfs.ParsePathSegment(rest)
	if err != nil {
		return err
	}
	if !parsed.HasRemainder {
		return usage("edit <file path> <new text>")
	}
	return s.FS.EditFile(parsed.Path, vfs.Text{Body: parsed.Remainder})
}

func debugTouch(s *session.Session, rest string) error {
	if rest == "" {
		return usage("touch <file path> [text]")
	}
	parsed, err := vfs.ParsePathSegment(rest)
	if err != nil {
		return err
	}
	parent, name, err := vfs.SplitFileAndParent(parsed.Path)
	if err != nil {
		return err
	}
	return s.FS.Touch(parent, vfs.File{Name: name, Content: vfs.Text{Body: parsed.Remainder}})
}

func debugRm(s *session.Session, rest string) error {
	kind, target := cutWord(rest)
	if target == "" {
		return usage("rm <file|dir> <path>")
	}
	p, err := singlePath(target)
	if err != nil {
		return err
	}
	switch kind {
	case "file":
		return s.FS.RmFile(p)
	case "dir":
		return s.FS.RmDir(p)
	default:
		return usage("rm <file|dir> <path>, not %q", kind)
	}
}

func debugTree(s *session.Session, rest string) error {
	p := "."
	if rest != "" {
		var err error
		if p, err = singlePath(rest); err != nil {
			return err
		}
	}
	tree, err := s.FS.Tree(p)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.Out, tree)
	return nil
}
