// Package config loads and validates display configuration files.
//
// A configuration file describes the physical wiring of an LED display and
// the pixel-mapper sequence applied on top of it, in TOML:
//
//	[matrix]
//	rows = 32
//	cols = 64
//	chain = 4
//	parallel = 1
//	pixel-mapper = "U-mapper;Rotate:90"
//
// rows and cols are the pixel dimensions of a single panel; the physical
// matrix is cols*chain wide and rows*parallel tall. The pixel-mapper entry
// uses the same semicolon-separated syntax as [mapper.ParseSequence] and may
// be empty for an unmapped display.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ledgrid/panelmap/pkg/errors"
	"github.com/ledgrid/panelmap/pkg/mapper"
)

// Config is the root of a display configuration file.
type Config struct {
	Matrix Matrix `toml:"matrix"`
}

// Matrix describes one wired panel assembly.
type Matrix struct {
	// Rows and Cols are the pixel dimensions of a single panel.
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`

	// Chain is the number of panels wired in series per output.
	Chain int `toml:"chain"`

	// Parallel is the number of parallel output chains.
	Parallel int `toml:"parallel"`

	// PixelMapper is a semicolon-separated mapper sequence, e.g.
	// "U-mapper;Rotate:90". Empty means no remapping.
	PixelMapper string `toml:"pixel-mapper"`
}

// Default returns the configuration for a single unmapped 32x32 panel.
func Default() Config {
	return Config{Matrix: Matrix{Rows: 32, Cols: 32, Chain: 1, Parallel: 1}}
}

// Load reads and validates a TOML configuration file. Missing topology
// fields fall back to the defaults from Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.New(errors.ErrCodeFileNotFound, "config file %s does not exist", path)
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the wiring topology for plausibility.
func (c Config) Validate() error {
	m := c.Matrix
	if m.Rows < 1 || m.Cols < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "panel size %dx%d is not positive", m.Cols, m.Rows)
	}
	if m.Chain < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "chain must be at least 1, got %d", m.Chain)
	}
	if m.Parallel < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "parallel must be at least 1, got %d", m.Parallel)
	}
	return nil
}

// Width returns the physical matrix width in pixels.
func (c Config) Width() int { return c.Matrix.Cols * c.Matrix.Chain }

// Height returns the physical matrix height in pixels.
func (c Config) Height() int { return c.Matrix.Rows * c.Matrix.Parallel }

// Sequence resolves the configured pixel-mapper list against the registry.
// It returns nil when no mapper is configured.
func (c Config) Sequence(reg *mapper.Registry) (*mapper.Sequence, error) {
	if c.Matrix.PixelMapper == "" {
		return nil, nil
	}
	return mapper.ParseSequence(reg, c.Matrix.PixelMapper, c.Matrix.Chain, c.Matrix.Parallel)
}
