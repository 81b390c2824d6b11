// Package config loads the YAML run configuration used by the disentangle
// command. Fields omitted from the file keep their defaults.
//
// Example:
//
//	puzzle: puzzles/gordian.txt
//	max_steps: 500000
//	progress_every: 10000
//	debug: false
//	output: json
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the settings for one solver run.
type Config struct {
	// Puzzle is the path of the puzzle definition file.
	Puzzle string `yaml:"puzzle"`

	// MaxSteps bounds the search; 0 means run until exhausted.
	MaxSteps int `yaml:"max_steps"`

	// ProgressEvery is the number of steps between progress lines; 0 disables them.
	ProgressEvery int `yaml:"progress_every"`

	// Debug enables the per-step search trace.
	Debug bool `yaml:"debug"`

	// Output selects the solution format: "text" or "json".
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		ProgressEvery: 10000,
		Output:        OutputText,
	}
}

// Load reads and validates the YAML file at path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML data on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges. An empty Puzzle is allowed here because the
// command line may still supply it.
func (c *Config) Validate() error {
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps must be >= 0, got %d", ErrInvalid, c.MaxSteps)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("%w: progress_every must be >= 0, got %d", ErrInvalid, c.ProgressEvery)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalid, OutputText, OutputJSON, c.Output)
	}

	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
