// Package config loads the arena's settings from a YAML, TOML or JSON file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nathanieltooley/pokearena/arena"
	"gopkg.in/yaml.v3"
)

const (
	ENV_LOG_LEVEL = "ARENA_LOG_LEVEL"
	ENV_DB        = "ARENA_DB"
)

var ErrUnknownFormat = errors.New("unknown config format")

type Config struct {
	Challenges int    `yaml:"challenges" toml:"challenges" json:"challenges"`
	Seed       uint64 `yaml:"seed" toml:"seed" json:"seed"`
	MaxTurns   int    `yaml:"max_turns" toml:"max_turns" json:"max_turns"`
	// SQLite file results are saved to. Empty keeps results in memory only.
	Database         string `yaml:"database" toml:"database" json:"database"`
	TeamSaveLocation string `yaml:"team_save_location" toml:"team_save_location" json:"team_save_location"`

	Log LogConfig `yaml:"log" toml:"log" json:"log"`

	Entrants []arena.EntrantConfig `yaml:"entrants" toml:"entrants" json:"entrants"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level" json:"level"`
	// Rotated log file; empty turns file logging off
	File       string `yaml:"file" toml:"file" json:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days" json:"max_age_days"`
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "pokearena")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Default is the stock lineup: cooper against random and hit-hard-or-switch players on three teams.
func Default() Config {
	return populateConfig(Config{})
}

// populateConfig fills every unset value with its default.
func populateConfig(config Config) Config {
	if config.Challenges <= 0 {
		config.Challenges = arena.DEFAULT_CHALLENGES
	}

	if config.MaxTurns <= 0 {
		config.MaxTurns = arena.DEFAULT_MAX_TURNS
	}

	if config.TeamSaveLocation == "" {
		config.TeamSaveLocation = filepath.Join(DefaultConfigDir(), "teams.json")
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	if config.Log.MaxSizeMB <= 0 {
		config.Log.MaxSizeMB = 10
	}

	if config.Log.MaxBackups <= 0 {
		config.Log.MaxBackups = 2
	}

	if config.Log.MaxAgeDays <= 0 {
		config.Log.MaxAgeDays = 30
	}

	if len(config.Entrants) == 0 {
		config.Entrants = arena.DefaultLineup()
	}

	for i := range config.Entrants {
		if config.Entrants[i].MaxConcurrentBattles <= 0 {
			config.Entrants[i].MaxConcurrentBattles = arena.DEFAULT_MAX_CONCURRENT
		}
	}

	return config
}

// applyEnv lets the environment override the file.
func applyEnv(config Config) Config {
	if level, ok := os.LookupEnv(ENV_LOG_LEVEL); ok && level != "" {
		config.Log.Level = level
	}

	if db, ok := os.LookupEnv(ENV_DB); ok {
		config.Database = db
	}

	return config
}

// Load reads the config at path, choosing the format from its extension. A missing file gives the defaults.
// Environment overrides are applied either way.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(Default()), nil
		}

		return Config{}, err
	}

	config, err := Parse(contents, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return applyEnv(config), nil
}

// Parse decodes a config in the format named by ext (".yaml", ".yml", ".toml" or ".json") and fills in defaults.
func Parse(contents []byte, ext string) (Config, error) {
	config := Config{}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(contents, &config); err != nil {
			return config, err
		}
	case ".toml":
		if _, err := toml.Decode(string(contents), &config); err != nil {
			return config, err
		}
	case ".json":
		if err := json.Unmarshal(contents, &config); err != nil {
			return config, err
		}
	default:
		return config, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return populateConfig(config), nil
}

// Encode writes config in the format named by ext.
func Encode(config Config, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Marshal(config)
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case ".json":
		return json.MarshalIndent(config, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Save writes config to path, creating its directory if needed.
func Save(path string, config Config) error {
	contents, err := Encode(config, filepath.Ext(path))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	return os.WriteFile(path, contents, 0644)
}
