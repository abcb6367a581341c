package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleLogger writes log lines to an io.Writer, stderr by default.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	tag     string
	w       io.Writer
	mu      *sync.Mutex
}

// NewConsoleLogger creates a ConsoleLogger writing to stderr.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewWriterLogger(os.Stderr, verbose)
}

// NewWriterLogger creates a ConsoleLogger writing to w.
// The TUI uses this with a log file so diagnostics don't tear the screen.
func NewWriterLogger(w io.Writer, verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
		w:       w,
		mu:      &sync.Mutex{},
	}
}

// WithTag returns a logger that prefixes every line with [tag].
// The returned logger shares the writer and its lock with l.
func (l *ConsoleLogger) WithTag(tag string) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: l.verbose,
		tag:     tag,
		w:       l.w,
		mu:      l.mu,
	}
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("[ERROR] ", format, args)
}

func (l *ConsoleLogger) write(level, format string, args []interface{}) {
	prefix := level
	if l.tag != "" {
		prefix += "[" + l.tag + "] "
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.w, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(l.w, prefix+format+"\n")
	}
}
