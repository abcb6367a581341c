package bytecrawl

// Logger receives diagnostics from the engine and front-ends. Output meant
// for the player never goes through it; that is written to the session's
// writer instead.
type Logger interface {
	// Verbose is dropped unless --verbose is set.
	Verbose(format string, args ...interface{})

	Info(format string, args ...interface{})

	Error(format string, args ...interface{})
}
