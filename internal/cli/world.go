package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bytecrawl/internal/player"
	"github.com/vvka-141/bytecrawl/internal/world"
)

var worldFlags struct {
	world     string
	configDir string
	tutorial  bool
}

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "Inspect world layouts",
}

var worldShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the directory tree a game would start with",
	Long: `Builds the world the play command would build and prints its tree.
The layout comes from --world, else from bytecrawl.yaml or BYTECRAWL_WORLD,
else the built-in world.

Examples:
  bytecrawl world show
  bytecrawl world show --world ./worlds/cave.yaml`,
	Args: cobra.NoArgs,
	RunE: runWorldShow,
}

var worldCheckCmd = &cobra.Command{
	Use:   "check <layout.yaml>",
	Short: "Validate a world layout file",
	Long: `Parses and validates a layout, reporting every problem at once.
Exits with code 11 when the layout is invalid.

Example:
  bytecrawl world check ./worlds/cave.yaml`,
	Args:              RequireWorldFile,
	RunE:              runWorldCheck,
	ValidArgsFunction: completeWorldFileArg,
}

func init() {
	rootCmd.AddCommand(worldCmd)
	worldCmd.AddCommand(worldShowCmd, worldCheckCmd)

	f := worldShowCmd.Flags()
	f.StringVarP(&worldFlags.world, "world", "w", "", "World layout file (default: built-in world)")
	f.StringVarP(&worldFlags.configDir, "config", "c", ".", "Directory containing bytecrawl.yaml")
	f.BoolVar(&worldFlags.tutorial, "tutorial", false, "Include the /tutorial program")

	_ = worldShowCmd.RegisterFlagCompletionFunc("world", completeWorldFiles)
	_ = worldShowCmd.RegisterFlagCompletionFunc("config", completeDirectories)
}

func runWorldShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadGameConfig(worldFlags.configDir, getVerboseFlag(cmd))
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("world") {
		cfg.World = worldFlags.world
	}

	layout, err := world.LoadLayout(cfg.World)
	if err != nil {
		return err
	}
	s, err := world.New(layout, player.New(), world.Options{Tutorial: worldFlags.tutorial})
	if err != nil {
		return err
	}

	tree, err := s.FS.Tree("/")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), tree)
	return nil
}

func runWorldCheck(cmd *cobra.Command, args []string) error {
	layout, err := world.LoadLayout(args[0])
	if err != nil {
		return err
	}
	if _, err := world.New(layout, player.New(), world.Options{}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d directories, %d files, %d shops\n",
		args[0], len(layout.Directories), len(layout.Files), len(layout.Shops))
	return nil
}
