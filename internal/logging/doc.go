// Package logging implements bytecrawl.Logger.
//
// ConsoleLogger writes prefixed lines to stderr or a log file and can be
// tagged with a session's short id via WithTag. NullLogger discards.
package logging
