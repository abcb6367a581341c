// Package vfs implements the in-memory virtual filesystem the game is played in.
//
// The tree lives in a flat arena owned by FileSystem. Directories are addressed
// by DirID and hold the index of their parent, so walking up with ".." is plain
// index arithmetic and read-only and mutating callers share one resolver.
//
// Key types:
//   - FileSystem: the arena, the current directory and the program registry
//   - Directory: a read-only view of one arena slot
//   - File: a named Content value stored in a directory
//   - Content: the closed set Text, Executable and Shop
//   - Program: behavior bound by name to Executable content
//
// Path expressions are parsed with ParsePathSegment and split with
// SplitFileAndParent before they reach the navigator.
//
// A FileSystem is not safe for concurrent use. Callers serialize access.
package vfs
