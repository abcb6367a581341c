// Package config loads bytecrawl.yaml and layers environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ErrConfigExists is returned by WriteDefault when it would overwrite a file.
var ErrConfigExists = errors.New("config file already exists")

// Environment variables that override the config file.
const (
	EnvDebug = "BYTECRAWL_DEBUG"
	EnvWorld = "BYTECRAWL_WORLD"
	EnvSeed  = "BYTECRAWL_SEED"
)

// PlayerConfig holds the stats a new game starts with.
type PlayerConfig struct {
	Health uint32 `yaml:"health"`
	Score  uint32 `yaml:"score"`
	Bytes  uint32 `yaml:"bytes"`
}

// GameConfig is the content of bytecrawl.yaml.
type GameConfig struct {
	Debug    bool         `yaml:"debug"`
	Tutorial bool         `yaml:"tutorial"`
	World    string       `yaml:"world"`
	Seed     uint64       `yaml:"seed"`
	Player   PlayerConfig `yaml:"player"`
}

const ConfigFileName = bytecrawl.ConfigFileName

// Default returns the configuration used when no file is present.
func Default() *GameConfig {
	return &GameConfig{
		Tutorial: true,
		Player:   PlayerConfig{Health: bytecrawl.DefaultHealth},
	}
}

// Load reads bytecrawl.yaml from dir. Keys missing from the file keep
// their defaults, and a relative world path is taken relative to dir.
func Load(dir string) (*GameConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", bytecrawl.ErrInvalidConfig, configPath, err)
	}
	if cfg.World != "" && !filepath.IsAbs(cfg.World) {
		cfg.World = filepath.Join(dir, cfg.World)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment. getenv is usually os.Getenv.
func (c *GameConfig) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", bytecrawl.ErrInvalidConfig, EnvDebug, v)
		}
		c.Debug = debug
	}
	if v := getenv(EnvWorld); v != "" {
		c.World = v
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a seed", bytecrawl.ErrInvalidConfig, EnvSeed, v)
		}
		c.Seed = seed
	}
	return nil
}

// Validate rejects configurations no game can start from.
func (c *GameConfig) Validate() error {
	if c.Player.Health == 0 {
		return fmt.Errorf("%w: player.health must be greater than zero", bytecrawl.ErrInvalidConfig)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *GameConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteDefault creates dir/bytecrawl.yaml with the default configuration
// and returns its path. An existing file is left alone.
func WriteDefault(dir string) (string, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := Default().Marshal()
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(configPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%w: %s", ErrConfigExists, configPath)
		}
		return "", err
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", err
	}
	return configPath, nil
}
