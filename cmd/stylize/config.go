package main

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/textengine/font"
)

// Output formats
const (
	FormatConsole = "console"
	FormatHTML    = "html"
	FormatHeight  = "height"
)

// Config holds the settings for rendering.
type Config struct {
	Font   FontConfig `mapstructure:"font"`
	Color  string     `mapstructure:"color"`  // base color as hex; empty for device default
	Width  int        `mapstructure:"width"`  // columns for console and HTML, points for height; 0 for a default
	Format string     `mapstructure:"format"` // console, html or height
	Bidi   bool       `mapstructure:"bidi"`   // emit terminal Bidi control codes
}

// FontConfig selects the base font.
type FontConfig struct {
	Family string  `mapstructure:"family"`
	Size   float64 `mapstructure:"size"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Font:   FontConfig{Family: font.Go, Size: font.DefaultSize},
		Format: FormatConsole,
	}
}

// BaseFont returns the configured base font.
func (c Config) BaseFont() font.Descriptor {
	return font.Descriptor{Family: c.Font.Family, Size: c.Font.Size}
}

// BaseColor parses the configured base color. It returns nil if no color is set.
func (c Config) BaseColor() (color.Color, error) {
	if c.Color == "" {
		return nil, nil
	}
	col, err := colorful.Hex(c.Color)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", c.Color, err)
	}
	return col, nil
}
