// Copyright 2020 Aleksandr Demakin. All rights reserved.

package view

import (
	"bytes"
	"io"
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	fixed "github.com/avdva/deepfixed"
)

// MaxPrecision limits the number of words per value in a config.
const MaxPrecision = 256

// Error is the class of view errors.
var Error = errs.Class("view")

// Config describes a camera:
//
//	precision: 4
//	viewport:
//	  width: 1920
//	  height: 1080
//	position:
//	  x: "-0.74364388703715870475"
//	  y: "0.13182590420531197049"
//	zoom:
//	  level: 40
//	  exp: 0.25
//
// Positions are decimal strings, so that they are not limited by float64 precision.
// Zero precision means, that it is derived from the zoom level, see Precision.
type Config struct {
	Precision int            `yaml:"precision"`
	Viewport  ViewportConfig `yaml:"viewport"`
	Position  PositionConfig `yaml:"position"`
	Zoom      ZoomConfig     `yaml:"zoom"`
}

// ViewportConfig is the size of the output in pixels.
type ViewportConfig struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

// PositionConfig is the center of the view.
type PositionConfig struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// ZoomConfig is the zoom depth. Exp is normalized into (-0.5, 0.5].
type ZoomConfig struct {
	Level int32   `yaml:"level"`
	Exp   float32 `yaml:"exp"`
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (_ *Config, err error) {
	defer Error.WrapP(&err)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(bytes.NewReader(data))
}

// ParseConfig decodes and validates a config. Unknown fields are rejected.
func ParseConfig(r io.Reader) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, Error.New("failed to parse yaml: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config.
func (c *Config) Validate() error {
	if c.Viewport.Width == 0 || c.Viewport.Height == 0 {
		return Error.New("empty viewport %dx%d", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return Error.New("precision %d is out of range [0, %d]", c.Precision, MaxPrecision)
	}
	if words := c.Words(); words > MaxPrecision {
		return Error.New("zoom level %d needs %d words, more than %d", c.Zoom.Level, words, MaxPrecision)
	}
	for _, p := range []struct{ name, val string }{{"x", c.Position.X}, {"y", c.Position.Y}} {
		if p.val == "" {
			continue
		}
		if _, err := fixed.FromString(p.val, 0); err != nil {
			return Error.New("invalid position %s: %v", p.name, err)
		}
	}
	return nil
}

// Words returns the number of words per value.
func (c *Config) Words() int {
	if c.Precision > 0 {
		return c.Precision
	}
	return Precision(c.Zoom.Level)
}

// Camera returns a camera for the config. Empty positions are zero.
func (c *Config) Camera() (Camera, error) {
	cam := Camera{
		Width:  c.Viewport.Width,
		Height: c.Viewport.Height,
	}
	var err error
	words := c.Words()
	if c.Position.X != "" {
		if cam.X, err = fixed.FromString(c.Position.X, words); err != nil {
			return cam, Error.Wrap(err)
		}
	}
	if c.Position.Y != "" {
		if cam.Y, err = fixed.FromString(c.Position.Y, words); err != nil {
			return cam, Error.Wrap(err)
		}
	}
	cam.Zoom = NewZoom(c.Zoom.Level, 0)
	cam.Zoom.Scroll(-c.Zoom.Exp)
	return cam, nil
}
