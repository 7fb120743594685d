// Package config assembles the runtime configuration from defaults, an
// optional YAML file, and environment overrides, in that order. The
// result is an explicit value handed to components at construction;
// nothing reads the environment at import time.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultDataFile    = "data/schedule.json"
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.7
	DefaultMaxMessages = 20
)

// Config holds everything the binaries need.
type Config struct {
	// Completion API collaborator. APIKey may be empty; the agent then
	// runs without the LLM fallback instead of aborting.
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`

	// Path of the persisted schedule aggregate.
	DataFile string `yaml:"data_file"`

	// Conversation memory cap.
	MaxMessages int `yaml:"max_messages"`
}

// Load builds the configuration. file may be empty; a named file that
// does not exist is an error, but the default path is only read when
// present.
func Load(file string) (Config, error) {
	cfg := Config{
		Model:       DefaultModel,
		DataFile:    DefaultDataFile,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		MaxMessages: DefaultMaxMessages,
	}

	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SCHEDULE_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("MAX_MESSAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxMessages = n
		}
	}
}
