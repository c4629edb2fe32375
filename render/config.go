// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ui2d/text"
)

// Config is the file form of the renderer settings.
//
//	width = 800
//	height = 600
//	sink = "software"
//	exact_polygon_keys = true
//	font_size = 14
type Config struct {
	Width            int     `toml:"width"`
	Height           int     `toml:"height"`
	Sink             string  `toml:"sink"`
	ExactPolygonKeys bool    `toml:"exact_polygon_keys"`
	FontSize         float64 `toml:"font_size"` // 0 selects the built-in bitmap face
}

// DefaultConfig returns the settings used for keys missing from a file.
func DefaultConfig() Config {
	return Config{
		Width:  640,
		Height: 480,
		Sink:   DefaultSink,
	}
}

// ParseConfig decodes TOML data on top of DefaultConfig. Unknown keys are
// an error.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("render: config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("render: config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("render: config: %w", err)
	}
	return ParseConfig(data)
}

// Marshal encodes the config as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks the values New and Options would reject.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, c.Width, c.Height)
	}
	if c.FontSize < 0 {
		return fmt.Errorf("render: config: negative font_size %v", c.FontSize)
	}
	return nil
}

// Options converts the config to renderer options. A positive FontSize
// loads Go Regular at that size as the default face.
func (c Config) Options() ([]Option, error) {
	var opts []Option
	if c.Sink != "" {
		opts = append(opts, WithSinkName(c.Sink))
	}
	if c.ExactPolygonKeys {
		opts = append(opts, WithExactPolygonKeys())
	}
	if c.FontSize > 0 {
		face, err := text.GoRegular(c.FontSize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDefaultFace(face))
	}
	return opts, nil
}

// NewFromConfig creates a renderer from c. Extra options are applied
// after the ones derived from c.
func NewFromConfig(c Config, extra ...Option) (*Renderer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return New(c.Width, c.Height, append(opts, extra...)...)
}
