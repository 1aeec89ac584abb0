package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when BLACKJACK_CONFIG is not set. It may be absent.
const DefaultPath = "blackjack.yaml"

// Config holds the settings a session starts with.
type Config struct {
	StartingChips uint  `yaml:"starting_chips" json:"starting_chips"`
	Seed          int64 `yaml:"seed" json:"seed"`
	Color         bool  `yaml:"color" json:"color"`
	Debug         bool  `yaml:"debug" json:"debug"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		StartingChips: 1000,
		Color:         true,
	}
}

// Load reads a YAML file over the defaults. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv("BLACKJACK_CHIPS")); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("BLACKJACK_CHIPS: %w", err)
		}
		c.StartingChips = uint(n)
	}
	if v := strings.TrimSpace(getenv("BLACKJACK_SEED")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("BLACKJACK_SEED: %w", err)
		}
		c.Seed = n
	}
	if v := getenv("BLACKJACK_DEBUG"); v != "" {
		c.Debug = asBool(v)
	}
	if getenv("NO_COLOR") != "" {
		c.Color = false
	}
	return nil
}

// Validate rejects settings a session cannot start with.
func (c Config) Validate() error {
	if c.StartingChips == 0 {
		return errors.New("starting_chips must be greater than zero")
	}
	return nil
}

// FromEnvironment loads the file named by BLACKJACK_CONFIG (or DefaultPath
// if present), applies environment overrides and validates the result.
func FromEnvironment() (Config, error) {
	path := os.Getenv("BLACKJACK_CONFIG")
	optional := path == ""
	if optional {
		path = DefaultPath
	}
	cfg, err := Load(path)
	if optional && errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(), nil
	}
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
