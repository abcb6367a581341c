package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/vvka-141/bytecrawl/internal/config"
	"github.com/vvka-141/bytecrawl/internal/logging"
	"github.com/vvka-141/bytecrawl/internal/params"
	"github.com/vvka-141/bytecrawl/internal/player"
	"github.com/vvka-141/bytecrawl/internal/tui"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// loadGameConfig loads .env, then bytecrawl.yaml from dir (defaults when
// absent), then applies environment overrides. Flags are applied by the
// caller on top of the result.
func loadGameConfig(dir string, verbose bool) (*config.GameConfig, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(dir)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
		}
		cfg = config.Default()
		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] No %s in %s, using defaults\n", config.ConfigFileName, dir)
		}
	} else if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Loaded %s from %s\n", config.ConfigFileName, dir)
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newPlayer builds the starting player from the configuration and any
// --stat overrides, which win.
func newPlayer(cfg *config.GameConfig, statPairs []string) (*player.Player, error) {
	p := player.New()
	p.Health = cfg.Player.Health
	p.Score = cfg.Player.Score
	p.Bytes = cfg.Player.Bytes

	overrides, err := params.ParseKeyValuePairs(statPairs)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(overrides); err != nil {
		return nil, fmt.Errorf("%w: --stat: %v", bytecrawl.ErrInvalidConfig, err)
	}
	if p.Health == 0 {
		return nil, fmt.Errorf("%w: --stat: health must be greater than zero", bytecrawl.ErrInvalidConfig)
	}
	return p, nil
}

// newLogger picks where diagnostics go. The full-screen shell owns the
// terminal, so there they go to logFile or nowhere.
func newLogger(verbose, interactive bool, logFile string) (bytecrawl.Logger, io.Closer, error) {
	switch {
	case logFile != "" && interactive:
		f, err := tui.OpenLogFile(logFile)
		if err != nil {
			return nil, nil, err
		}
		return logging.NewWriterLogger(f, verbose), f, nil
	case logFile != "":
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
		}
		return logging.NewWriterLogger(f, verbose), f, nil
	case interactive:
		return logging.NewNullLogger(), io.NopCloser(nil), nil
	default:
		return logging.NewConsoleLogger(verbose), io.NopCloser(nil), nil
	}
}
