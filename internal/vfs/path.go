package vfs

import (
	"fmt"
	"strings"

	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// ParsedPath is a path expression cut from the front of a command argument.
type ParsedPath struct {
	// Path is the path with any surrounding quotes removed.
	Path string

	// Remainder is the text following the path, after one separator.
	// Only meaningful when HasRemainder is true.
	Remainder string

	// HasRemainder distinguishes "nothing after the path" from an
	// explicitly empty trailing argument.
	HasRemainder bool
}

// ParsePathSegment cuts a path off the front of raw.
//
// A path starting with ' runs to the next unescaped ' (\' is a literal
// quote) and may contain spaces. Any other path runs to the first space.
// Exactly one character after the path is treated as the separator and the
// rest becomes the remainder.
//
//	"'my file' rest of line" → Path "my file", Remainder "rest of line"
//	"myfile"                 → Path "myfile", no remainder
//	"myfile "                → Path "myfile", empty remainder
//	"'unterminated"          → ErrMalformedPath
func ParsePathSegment(raw string) (ParsedPath, error) {
	var (
		path  strings.Builder
		index int
	)

	if strings.HasPrefix(raw, "'") {
		index = 1
		closed := false
		for index < len(raw) {
			ch := raw[index]
			if ch == '\\' && index+1 < len(raw) && raw[index+1] == '\'' {
				path.WriteByte('\'')
				index += 2
				continue
			}
			if ch == '\'' {
				closed = true
				index++
				break
			}
			path.WriteByte(ch)
			index++
		}
		if !closed {
			return ParsedPath{}, fmt.Errorf("%w: no closing ' found in %q", bytecrawl.ErrMalformedPath, raw)
		}
	} else {
		end := strings.IndexByte(raw, ' ')
		if end < 0 {
			end = len(raw)
		}
		path.WriteString(raw[:end])
		index = end
	}

	parsed := ParsedPath{Path: path.String()}
	if index < len(raw) {
		parsed.HasRemainder = true
		parsed.Remainder = raw[index+1:]
	}
	return parsed, nil
}

// SplitFileAndParent separates the last segment of p from its parent.
// Trailing slashes are ignored. A bare name has the current directory "."
// as its parent and "/name" has the root.
func SplitFileAndParent(p string) (parent, name string, err error) {
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" {
		return "", "", fmt.Errorf("%w: %q does not name a file or directory", bytecrawl.ErrInvalidArguments, p)
	}

	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return ".", trimmed, nil
	}

	parent, name = trimmed[:idx], trimmed[idx+1:]
	if parent == "" {
		parent = "/"
	}
	return parent, name, nil
}

// segments splits a path on "/" and drops empty segments.
func segments(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func validName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", bytecrawl.ErrMalformedPath)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q is reserved", bytecrawl.ErrMalformedPath, name)
	case strings.Contains(name, "/"):
		return fmt.Errorf("%w: name %q contains a separator", bytecrawl.ErrMalformedPath, name)
	}
	return nil
}
