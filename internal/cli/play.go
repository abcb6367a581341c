package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vvka-141/bytecrawl/internal/logging"
	"github.com/vvka-141/bytecrawl/internal/session"
	"github.com/vvka-141/bytecrawl/internal/shell"
	"github.com/vvka-141/bytecrawl/internal/tui"
	"github.com/vvka-141/bytecrawl/internal/world"
)

var playFlags struct {
	debug      bool
	noTutorial bool
	plain      bool
	world      string
	seed       uint64
	stats      []string
	logFile    string
	configDir  string
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a new game",
	Long: `Builds a fresh world and drops you at its root.

Settings are layered: defaults, then bytecrawl.yaml in --config, then the
BYTECRAWL_DEBUG, BYTECRAWL_WORLD and BYTECRAWL_SEED environment variables
(a .env file in the working directory is read first), then flags.

On a terminal the game runs full screen with history and tab completion.
With --plain, or when input is piped, it reads one command per line.

Examples:
  # Start with the built-in world
  bytecrawl play

  # Skip the tutorial and start rich
  bytecrawl play --no-tutorial --stat bytes=500

  # Replay a run exactly
  bytecrawl play --world ./worlds/cave.yaml --seed 42

  # Script a session
  printf 'ls\ncd dungeon\n' | bytecrawl play --plain`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	f := playCmd.Flags()
	f.BoolVar(&playFlags.debug, "debug", false, "Enable the debug command inside the game")
	f.BoolVar(&playFlags.noTutorial, "no-tutorial", false, "Do not place the tutorial program at /tutorial")
	f.BoolVar(&playFlags.plain, "plain", false, "Use the line-oriented shell even on a terminal")
	f.StringVarP(&playFlags.world, "world", "w", "", "World layout file (default: built-in world)")
	f.Uint64Var(&playFlags.seed, "seed", 0, "Random seed for programs (0 seeds from the clock)")
	f.StringArrayVar(&playFlags.stats, "stat", nil, "Starting stat override, e.g. --stat bytes=100 (repeatable)")
	f.StringVar(&playFlags.logFile, "log-file", "", "Append diagnostics to this file")
	f.StringVarP(&playFlags.configDir, "config", "c", ".", "Directory containing bytecrawl.yaml")

	_ = playCmd.RegisterFlagCompletionFunc("world", completeWorldFiles)
	_ = playCmd.RegisterFlagCompletionFunc("stat", completeStatNames)
	_ = playCmd.RegisterFlagCompletionFunc("config", completeDirectories)
}

func runPlay(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := loadGameConfig(playFlags.configDir, verbose)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = playFlags.debug
	}
	if flags.Changed("no-tutorial") {
		cfg.Tutorial = !playFlags.noTutorial
	}
	if flags.Changed("world") {
		cfg.World = playFlags.world
	}
	if flags.Changed("seed") {
		cfg.Seed = playFlags.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p, err := newPlayer(cfg, playFlags.stats)
	if err != nil {
		return err
	}

	layout, err := world.LoadLayout(cfg.World)
	if err != nil {
		return err
	}

	interactive := !playFlags.plain && tui.IsInteractive()
	logger, closer, err := newLogger(verbose, interactive, playFlags.logFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Programs keep the writer and logger they are built with, so the
	// session tag and the full-screen shell's screen buffer are set up front.
	id := uuid.New()
	if cl, ok := logger.(*logging.ConsoleLogger); ok {
		logger = cl.WithTag(session.ShortID(id))
	}

	var screen bytes.Buffer
	opts := world.Options{
		Debug:     cfg.Debug,
		Tutorial:  cfg.Tutorial,
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
		Seed:      cfg.Seed,
		SessionID: id,
	}
	if interactive {
		opts.Out = &screen
	}

	s, err := world.New(layout, p, opts)
	if err != nil {
		return err
	}
	s.Logger.Verbose("Session %s started (debug=%t, tutorial=%t, seed=%d)", s.ID, cfg.Debug, cfg.Tutorial, cfg.Seed)

	if interactive {
		return tui.RunShell(s, &screen)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := shell.Run(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("shell failed: %w", err)
	}
	return nil
}
