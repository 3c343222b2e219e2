// Package config provides Viper-based configuration loading for the arena.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// GameConfig holds combat and presentation settings.
type GameConfig struct {
	// PlayerName is the display name of the player character.
	PlayerName string `mapstructure:"player_name"`
	// PaceMs is the cosmetic delay between rendered events, in milliseconds.
	// Zero disables pacing.
	PaceMs int `mapstructure:"pace_ms"`
	// Color toggles ANSI color output.
	Color bool `mapstructure:"color"`
	// Seed seeds the randomness source for reproducible runs; 0 selects a
	// crypto-backed source.
	Seed int64 `mapstructure:"seed"`
	// BestiaryDir is the directory of enemy template YAML files; empty
	// selects the built-in roster.
	BestiaryDir string `mapstructure:"bestiary_dir"`
	// RestHeal is the fixed amount the rest action restores.
	RestHeal int `mapstructure:"rest_heal"`
	// SpecialOdds is the probability an enemy uses its special ability on
	// its turn.
	SpecialOdds float64 `mapstructure:"special_odds"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.PlayerName == "" {
		errs = append(errs, "game.player_name must not be empty")
	}
	if g.PaceMs < 0 {
		errs = append(errs, fmt.Sprintf("game.pace_ms must be >= 0, got %d", g.PaceMs))
	}
	if g.RestHeal < 0 {
		errs = append(errs, fmt.Sprintf("game.rest_heal must be >= 0, got %d", g.RestHeal))
	}
	if g.SpecialOdds < 0 || g.SpecialOdds > 1 {
		errs = append(errs, fmt.Sprintf("game.special_odds must be in [0, 1], got %g", g.SpecialOdds))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
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

// Load reads the configuration file at path, applies ARENA_-prefixed
// environment overrides and defaults, and validates the result.
//
// Precondition: path must reference a readable config file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with ARENA_ prefix
	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is given.
//
// Postcondition: The returned Config passes Validate.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Unmarshal over defaults cannot fail for this struct shape.
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.player_name", "Hero")
	v.SetDefault("game.pace_ms", 600)
	v.SetDefault("game.color", true)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.bestiary_dir", "")
	v.SetDefault("game.rest_heal", 15)
	v.SetDefault("game.special_odds", 1.0/3.0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
