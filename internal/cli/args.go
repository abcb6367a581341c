package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireWorldFile validates that exactly one world layout argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireWorldFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <layout.yaml>

Usage: %s

Example:
  %s ./worlds/cave.yaml`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
