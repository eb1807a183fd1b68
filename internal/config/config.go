// Package config loads generation defaults for the CLI.
//
// Precedence, lowest to highest: built-in defaults, environment variables
// (optionally sourced from a .env file), then the TOML defaults file.
// Command-line flags override everything and are handled by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds user-facing generation defaults. These are non-sensitive
// settings a user can pin in a file instead of repeating flags.
type Config struct {
	Length int    `toml:"length"`
	Count  int    `toml:"count"`
	Format string `toml:"format"`
	Quiet  bool   `toml:"quiet"`
}

// Load loads configuration from environment variables only.
func Load() (*Config, error) {
	return LoadWithFiles("", "")
}

// LoadWithFiles loads configuration from an optional .env file, environment
// variables, and an optional TOML defaults file. Missing files are not errors.
func LoadWithFiles(envFile, tomlFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Length: parsePositiveInt(os.Getenv("PWFORGE_LENGTH"), 16),
		Count:  parsePositiveInt(os.Getenv("PWFORGE_COUNT"), 1),
		Format: getEnvOrDefault("PWFORGE_FORMAT", "text"),
		Quiet:  parseBool(os.Getenv("PWFORGE_QUIET")),
	}

	if tomlFile != "" {
		if _, err := os.Stat(tomlFile); err == nil {
			if _, err := toml.DecodeFile(tomlFile, cfg); err != nil {
				return nil, fmt.Errorf("failed to load defaults file: %w", err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the loaded defaults are usable.
func (c *Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("default length must be positive, got %d", c.Length)
	}
	if c.Count <= 0 {
		return fmt.Errorf("default count must be positive, got %d", c.Count)
	}
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("default format must be \"text\" or \"json\", got %q", c.Format)
	}
	return nil
}

// parsePositiveInt converts a string to a positive int, falling back to def.
func parsePositiveInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// parseBool converts a string to a boolean, defaulting to false.
func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
