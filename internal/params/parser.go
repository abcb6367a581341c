package params

import (
	"fmt"
	"strings"

	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// ParseKeyValuePairs converts a slice of "key=value" strings into a map.
// Keys are lowercased; later pairs override earlier ones.
//
// Example:
//
//	stats, err := ParseKeyValuePairs([]string{"bytes=500", "Health=40"})
//	// Returns: map[string]string{"bytes": "500", "health": "40"}
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not in key=value format (example: --stat bytes=100)", bytecrawl.ErrInvalidCommandArguments, pair)
		}

		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, fmt.Errorf("%w: empty key in %q", bytecrawl.ErrInvalidCommandArguments, pair)
		}

		result[key] = strings.TrimSpace(value)
	}

	return result, nil
}
