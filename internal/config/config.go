package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	aoc2022day03 "github.com/povarna/advent-of-code/aoc/2022/day03"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/puzzles.yaml"

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the YAML config at path. A missing file at DefaultPath falls back
// to the built-in defaults, any other path has to exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Year == 0 {
		cfg.Year = 2022
	}
	if cfg.InputDir == "" {
		cfg.InputDir = "inputs"
	}
	if cfg.Calories.Input == "" {
		cfg.Calories.Input = filepath.Join(fmt.Sprint(cfg.Year), "day01", "input.txt")
	}
	if cfg.Calories.TopN == 0 {
		cfg.Calories.TopN = 3
	}
	if cfg.Strategy.Input == "" {
		cfg.Strategy.Input = filepath.Join(fmt.Sprint(cfg.Year), "day02", "input.txt")
	}
	if cfg.Rucksack.Input == "" {
		cfg.Rucksack.Input = filepath.Join(fmt.Sprint(cfg.Year), "day03", "input.txt")
	}
	if cfg.Rucksack.Alphabet == "" {
		cfg.Rucksack.Alphabet = aoc2022day03.DefaultAlphabet
	}
	if cfg.Rucksack.GroupSize == 0 {
		cfg.Rucksack.GroupSize = 3
	}
}

func (c *Config) Validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("year %d is before the first Advent of Code", c.Year)
	}
	if c.Calories.TopN < 1 {
		return fmt.Errorf("day01.top_n must be positive, got %d", c.Calories.TopN)
	}
	if c.Rucksack.GroupSize < 1 {
		return fmt.Errorf("day03.group_size must be positive, got %d", c.Rucksack.GroupSize)
	}
	return nil
}

// InputPath resolves a puzzle input relative to the input directory.
func (c *Config) InputPath(input string) string {
	if filepath.IsAbs(input) {
		return input
	}
	return filepath.Join(c.InputDir, input)
}
