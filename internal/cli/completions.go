package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bytecrawl/internal/player"
)

// statNames are the keys accepted by --stat.
var statNames = []string{player.StatHealth, player.StatScore, player.StatBytes}

// completeWorldFiles restricts completion to YAML layout files.
func completeWorldFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeWorldFileArg completes the single layout argument of world check.
func completeWorldFileArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeWorldFiles(cmd, args, toComplete)
}

// completeStatNames completes the key half of a --stat key=value pair.
func completeStatNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if strings.Contains(toComplete, "=") {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var matches []string
	for _, name := range statNames {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name+"=")
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

// completeDirectories provides directory-only completion for the first arg.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}
