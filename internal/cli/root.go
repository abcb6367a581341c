package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = ` ___      _        ___                 _
| _ )_  _| |_ ___ / __|_ _ __ ___ __ _| |
| _ \ || |  _/ -_) (__| '_/ _' \ V  V / |
|___/\_, |\__\___|\___|_| \__,_|\_/\_/|_|
     |__/`

var rootCmd = &cobra.Command{
	Use:   "bytecrawl",
	Short: "A dungeon crawler played inside a virtual filesystem",
	Long: asciiLogo + `

ByteCrawl is a text adventure where the dungeon is a filesystem. Move
around with cd, look around with ls, read files with cat and run the
programs you find to collect bytes. Spend them in the shops.

Nothing touches your real disk: the world lives in memory and is built
from a YAML layout every time you start.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or --stat override
  11 - Invalid world layout`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for bytecrawl")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
