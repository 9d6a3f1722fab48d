// Package config loads optional defaults for the timegaps command from
// a YAML file. Command line flags always take precedence over file
// values; the file only fills in what the invocation left unset.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath is the environment variable naming the config file to load
// when the --config flag is not given.
const EnvPath = "TIMEGAPS_CONFIG"

// Config holds file-provided defaults for command line flags. The rules
// string is deliberately not configurable here: it names what a run is
// for and must always be given on the command line.
type Config struct {
	// NullSep switches the item separator to NUL for input and output.
	NullSep bool `yaml:"nullsep"`

	// Accepted reports (and acts on) accepted instead of rejected items.
	Accepted bool `yaml:"accepted"`

	// MoveTo is a default target directory for the move action.
	MoveTo string `yaml:"move_to"`

	// Verbosity is the default log verbosity: 0 errors, 1 info, 2 debug.
	Verbosity int `yaml:"verbosity"`
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return &cfg, nil
}

// Resolve returns the config to use: the explicit path if given, else
// the file named by TIMEGAPS_CONFIG, else zero-value defaults. An
// explicitly requested file must exist; the env-named one may be absent.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if env := os.Getenv(EnvPath); env != "" {
		cfg, err := Load(env)
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return cfg, err
	}
	return &Config{}, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity must be 0, 1 or 2, got %d", c.Verbosity)
	}
	return nil
}
