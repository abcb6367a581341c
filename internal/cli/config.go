package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bytecrawl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create or inspect bytecrawl.yaml",
}

var configInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default bytecrawl.yaml",
	Long: `Writes bytecrawl.yaml with default settings into dir (default: the
current directory). An existing file is never overwritten.

Examples:
  bytecrawl config init
  bytecrawl config init ./saves`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runConfigInit,
	ValidArgsFunction: completeDirectories,
}

var configShowCmd = &cobra.Command{
	Use:   "show [dir]",
	Short: "Print the effective configuration",
	Long: `Prints the settings play would use from dir (default: the current
directory) after defaults, bytecrawl.yaml and environment overrides.`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runConfigShow,
	ValidArgsFunction: completeDirectories,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)
}

func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.WriteDefault(targetDir(args))
	if err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("%w: remove it first or edit it by hand", err)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Configuration saved to %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadGameConfig(targetDir(args), getVerboseFlag(cmd))
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
