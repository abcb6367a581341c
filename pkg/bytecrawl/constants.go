package bytecrawl

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Session ended normally
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or stat overrides
	ExitWorldError   = 11 // World layout could not be loaded
)

const (
	// ConfigFileName is the name of the per-directory configuration file.
	ConfigFileName = "bytecrawl.yaml"

	// StatsFilePath is the text file that mirrors the player's stats.
	StatsFilePath = "/stats"

	// TutorialFilePath is where the tutorial program is placed when enabled.
	TutorialFilePath = "/tutorial"

	// DefaultHealth is the health a new player starts with.
	DefaultHealth = 100

	// MaxHistory bounds the number of commands remembered by the TUI shell.
	MaxHistory = 200

	// MaxScrollback bounds the number of output lines kept by the TUI shell.
	MaxScrollback = 1000
)
