package components

import (
	"sort"
	"strings"

	"github.com/vvka-141/bytecrawl/internal/vfs"
)

// Lister is the part of the virtual filesystem the completer reads.
type Lister interface {
	List(p string) (vfs.Listing, error)
}

// PathCompleter provides tab-completion and cycling for virtual paths.
// It tracks state across Tab presses to cycle through matches.
//
// Usage:
//
//	completer := NewPathCompleter(fsys, true) // dirs only
//
//	// On Tab press:
//	completed := completer.Next(lastWord)
//
//	// On any other keypress:
//	completer.Reset()
type PathCompleter struct {
	fs         Lister
	matches    []vfs.Entry
	cycleIndex int
	parent     string
	quoted     bool
	query      string // the word the matches were computed for
	last       string // the last completion returned
	dirsOnly   bool
}

// NewPathCompleter creates a new path completer over fs.
// If dirsOnly is true, only directories are matched.
func NewPathCompleter(fs Lister, dirsOnly bool) *PathCompleter {
	return &PathCompleter{fs: fs, dirsOnly: dirsOnly}
}

// SetDirsOnly switches between completing directories and everything.
// Changing it resets the cycle.
func (c *PathCompleter) SetDirsOnly(dirsOnly bool) {
	if c.dirsOnly != dirsOnly {
		c.dirsOnly = dirsOnly
		c.Reset()
	}
}

// Next returns the next completion for the given path word.
// Matches are computed on the first call. Calling again with the same word,
// or with the completion just returned, cycles through them.
func (c *PathCompleter) Next(input string) string {
	if c.matches != nil && (input == c.query || input == c.last) {
		c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
		c.last = formatMatch(c.parent, c.matches[c.cycleIndex], c.quoted)
		return c.last
	}

	c.quoted = strings.HasPrefix(input, "'")
	parent, prefix := splitPath(strings.TrimPrefix(input, "'"))
	c.parent = parent
	c.query = input
	c.matches = c.findMatches(parent, prefix)
	c.cycleIndex = 0

	if len(c.matches) == 0 {
		c.matches = nil
		return input
	}

	// First Tab: if the matches share a prefix longer than input, complete it
	if len(c.matches) > 1 {
		names := make([]string, len(c.matches))
		for i, m := range c.matches {
			names[i] = m.Name
		}
		candidate := parent + longestCommonPrefix(names)
		if c.quoted {
			candidate = "'" + candidate
		}
		if len(candidate) > len(input) {
			// the next Tab starts cycling at the first match
			c.cycleIndex = -1
			c.query = candidate
			c.last = candidate
			return candidate
		}
	}

	c.last = formatMatch(parent, c.matches[c.cycleIndex], c.quoted)
	return c.last
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *PathCompleter) Reset() {
	c.matches = nil
	c.cycleIndex = 0
	c.parent = ""
	c.quoted = false
	c.query = ""
	c.last = ""
}

func (c *PathCompleter) findMatches(parent, prefix string) []vfs.Entry {
	dir := parent
	if dir == "" {
		dir = "."
	}

	listing, err := c.fs.List(dir)
	if err != nil {
		return nil
	}

	var matches []vfs.Entry
	seen := make(map[string]bool)
	for _, entry := range listing.Entries {
		if c.dirsOnly && !entry.Dir {
			continue
		}
		// a file may share its name with a directory or another file
		key := entry.Name
		if entry.Dir {
			key += "/"
		}
		if seen[key] || !strings.HasPrefix(entry.Name, prefix) {
			continue
		}
		seen[key] = true
		matches = append(matches, entry)
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}

// formatMatch joins parent and the match. Directories get a trailing "/".
// Names with spaces are quoted; a quoted directory is left open so the
// player can keep typing inside it.
func formatMatch(parent string, match vfs.Entry, quoted bool) string {
	result := parent + match.Name
	if match.Dir {
		result += "/"
	}
	if !quoted && !strings.Contains(result, " ") {
		return result
	}
	if match.Dir {
		return "'" + result
	}
	return "'" + result + "'"
}

// splitPath splits a path word into the parent as typed (up to and
// including the last "/") and the name prefix after it.
//
//	"dungeon/do" → ("dungeon/", "do")
//	"/"          → ("/", "")
//	"my"         → ("", "my")
//	""           → ("", "")
func splitPath(input string) (parent, prefix string) {
	i := strings.LastIndex(input, "/")
	if i < 0 {
		return "", input
	}
	return input[:i+1], input[i+1:]
}

// longestCommonPrefix finds the longest common prefix among strs.
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	if len(strs) == 1 {
		return strs[0]
	}

	first := strs[0]
	for i := 0; i < len(first); i++ {
		ch := first[i]
		for _, s := range strs[1:] {
			if i >= len(s) || s[i] != ch {
				return first[:i]
			}
		}
	}
	return first
}
