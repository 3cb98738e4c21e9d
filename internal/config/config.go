// Package config provides Viper-based configuration loading for the game.
package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// GameConfig holds the rules applied to a game session.
type GameConfig struct {
	// Players are the two seat names, first to act first.
	Players []string `mapstructure:"players"`
	// StartingLives is used when no level is selected.
	StartingLives int `mapstructure:"starting_lives"`
	// MaxLives caps cigarette healing. 0 disables the cap.
	MaxLives int `mapstructure:"max_lives"`
	// MaxItems bounds each inventory when items are dealt. 0 disables the bound.
	MaxItems int `mapstructure:"max_items"`
	// ItemsPerLoad is how many items each player is dealt per load when no level is selected.
	ItemsPerLoad int `mapstructure:"items_per_load"`
	// KeepTurnOnBlankSelfShot lets a player act again after shooting themselves with a blank.
	KeepTurnOnBlankSelfShot bool `mapstructure:"keep_turn_on_blank_self_shot"`
	// Seed selects a deterministic shuffle when non-zero; 0 uses crypto/rand.
	Seed uint64 `mapstructure:"seed"`
	// LevelsDir is the directory holding level YAML files.
	LevelsDir string `mapstructure:"levels_dir"`
	// Level is the ID of the level to play; empty plays random loads.
	Level string `mapstructure:"level"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if len(g.Players) != 2 {
		errs = append(errs, fmt.Sprintf("game.players must name exactly 2 players, got %d", len(g.Players)))
	} else {
		if g.Players[0] == "" || g.Players[1] == "" {
			errs = append(errs, "game.players must not contain empty names")
		}
		if g.Players[0] == g.Players[1] {
			errs = append(errs, "game.players must be distinct")
		}
	}
	if g.StartingLives < 1 || g.StartingLives > math.MaxUint8 {
		errs = append(errs, fmt.Sprintf("game.starting_lives must be 1-255, got %d", g.StartingLives))
	}
	if g.MaxLives < 0 || g.MaxLives > math.MaxUint8 {
		errs = append(errs, fmt.Sprintf("game.max_lives must be 0-255, got %d", g.MaxLives))
	} else if g.MaxLives != 0 && g.MaxLives < g.StartingLives {
		errs = append(errs, "game.max_lives must be 0 or >= game.starting_lives")
	}
	if g.MaxItems < 0 {
		errs = append(errs, fmt.Sprintf("game.max_items must be >= 0, got %d", g.MaxItems))
	}
	if g.ItemsPerLoad < 0 {
		errs = append(errs, fmt.Sprintf("game.items_per_load must be >= 0, got %d", g.ItemsPerLoad))
	}
	if g.Level != "" && g.LevelsDir == "" {
		errs = append(errs, "game.levels_dir must be set when game.level is set")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and the
// environment only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with BUCKSHOT_ prefix
	v.SetEnvPrefix("BUCKSHOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns a Viper instance populated only with default values.
func Defaults() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("game.players", []string{"player", "dealer"})
	v.SetDefault("game.starting_lives", 2)
	v.SetDefault("game.max_lives", 6)
	v.SetDefault("game.max_items", 8)
	v.SetDefault("game.items_per_load", 0)
	v.SetDefault("game.keep_turn_on_blank_self_shot", false)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.levels_dir", "content/levels")
	v.SetDefault("game.level", "")
}
