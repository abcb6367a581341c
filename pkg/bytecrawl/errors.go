package bytecrawl

import (
	"errors"
	"strings"
)

// Sentinel errors for filesystem and game failures.
// Callers distinguish them with errors.Is(); operations wrap them with
// context using fmt.Errorf("...: %w", ...).
//
// Example usage:
//
//	if _, err := fsys.Resolve(vfs.RootID, "/dungeon/door9"); errors.Is(err, bytecrawl.ErrNotFound) {
//	    // Handle missing directory
//	}
var (
	// ErrMalformedPath indicates a path expression could not be parsed,
	// e.g. a quoted path without its closing quote.
	ErrMalformedPath = errors.New("malformed path")

	// ErrNotFound indicates a directory or file segment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDirAlreadyExists indicates a direct create targeted an existing sibling directory.
	ErrDirAlreadyExists = errors.New("directory already exists")

	// ErrNotReadable indicates the file content is not text.
	ErrNotReadable = errors.New("file is not a text file and can not be read")

	// ErrNotExecutable indicates the file content is not an executable program.
	ErrNotExecutable = errors.New("file is not executable")

	// ErrInvalidArguments indicates an operation received an argument it can not act on.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInvalidCommandArguments indicates a command was given the wrong number of arguments.
	ErrInvalidCommandArguments = errors.New("invalid command arguments")

	// ErrUnknownCommand indicates the player typed something that is not a command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrDuplicateProgram indicates a program name was registered twice.
	ErrDuplicateProgram = errors.New("program already registered")

	// ErrUnknownStat indicates a player stat name is not recognized.
	ErrUnknownStat = errors.New("unknown stat")

	// ErrInsufficientBytes indicates the player can not afford a purchase.
	ErrInsufficientBytes = errors.New("not enough bytes")

	// ErrUnknownShop indicates a shop file references a shop that is not registered.
	ErrUnknownShop = errors.New("unknown shop")

	// ErrUnknownItem indicates a shop does not stock the requested item.
	ErrUnknownItem = errors.New("unknown item")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidWorld indicates a world layout could not be loaded or populated.
	ErrInvalidWorld = errors.New("invalid world layout")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidWorld):
		return ExitWorldError
	case errors.Is(err, ErrInvalidCommandArguments):
		return ExitUsageError
	}

	// Cobra reports flag and arity problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"missing required argument",
}
