// Package config loads the optional aoc.yaml file that tells the CLI where
// puzzle inputs live and which answers are known to be correct.
//
//	inputs: ./inputs
//	answers:
//	  1: {part1: 142, part2: 281}
//	  20: {part1: 32000000}
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "aoc.yaml"

// EnvInputs overrides Config.Inputs when set.
const EnvInputs = "AOC_INPUTS"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Expected holds known-good answers for one day. A nil part is not checked.
type Expected struct {
	Part1 *int64 `yaml:"part1,omitempty"`
	Part2 *int64 `yaml:"part2,omitempty"`
}

// Config is the decoded aoc.yaml.
type Config struct {
	// Inputs is a directory holding dayNN.txt files. Relative paths are
	// resolved against the directory of the config file.
	Inputs  string           `yaml:"inputs"`
	Answers map[int]Expected `yaml:"answers"`
}

// Default returns an empty configuration.
func Default() *Config {
	return &Config{Answers: map[int]Expected{}}
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if cfg.Answers == nil {
		cfg.Answers = map[int]Expected{}
	}
	if cfg.Inputs != "" && !filepath.IsAbs(cfg.Inputs) {
		cfg.Inputs = filepath.Join(filepath.Dir(path), cfg.Inputs)
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks day numbers in the answers table.
func (c *Config) Validate() error {
	for day := range c.Answers {
		if day < 1 || day > 25 {
			return fmt.Errorf("%w: answers: day %d out of range 1..25", ErrInvalidConfig, day)
		}
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv(EnvInputs); dir != "" {
		c.Inputs = dir
	}
}
