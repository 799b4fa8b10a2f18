package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/quatkit/engine/core"
	"github.com/spaghettifunk/quatkit/engine/math"
)

type LogConfig struct {
	Level  string `toml:"level"`
	Prefix string `toml:"prefix"`
}

// Config is the quatkit configuration file:
//
//	tolerance = 1e-12
//	[log]
//	level = "info"
//	prefix = "quatkit"
type Config struct {
	Tolerance float64   `toml:"tolerance"`
	Log       LogConfig `toml:"log"`
}

func Default() *Config {
	return &Config{
		Tolerance: math.DefaultTolerance.Value(),
		Log: LogConfig{
			Level:  "info",
			Prefix: core.DefaultLogPrefix,
		},
	}
}

// Parse decodes data on top of Default, so missing keys keep their default
// value. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding config: %v: %w", err, core.ErrInvalidConfig)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	core.LogDebug("loaded config from %s", path)
	return c, nil
}

func (c *Config) Validate() error {
	if _, err := math.NewTolerance(c.Tolerance); err != nil {
		return fmt.Errorf("%v: %w", err, core.ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level %q: %w", c.Log.Level, core.ErrInvalidConfig)
	}
	return nil
}

// ComparisonTolerance returns the configured tolerance as a math.Tolerance.
// Validate must have accepted the configuration.
func (c *Config) ComparisonTolerance() math.Tolerance {
	return math.Tolerance(c.Tolerance)
}

// Apply configures the shared logger from the [log] table.
func (c *Config) Apply() error {
	return core.ConfigureLogger(c.Log.Level, c.Log.Prefix)
}
