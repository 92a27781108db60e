// Package config loads the img2ascii command's TOML settings file.
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wbrown/img2ascii"
)

type Config struct {
	Decoder    string  `toml:"decoder"`     // "go", or "opencv" in gocv builds
	Width      int     `toml:"width"`       // downscale target, 0 keeps 1:1
	Scale      float64 `toml:"scale"`       // character aspect correction
	AutoOrient bool    `toml:"auto_orient"` // apply EXIF orientation
	HTML       bool    `toml:"html"`        // export an HTML page
	Open       bool    `toml:"open"`        // open the HTML page in a browser
	HTMLDir    string  `toml:"html_dir"`    // where HTML pages go, empty = temp dir
	Title      string  `toml:"title"`       // HTML page title
	Background string  `toml:"background"`  // HTML and PNG background color
	Foreground string  `toml:"foreground"`  // HTML and PNG text color
	FontPath   string  `toml:"font"`        // TTF for PNG output, empty = Go Mono
	FontSize   float64 `toml:"font_size"`   // points
	LogLevel   string  `toml:"log_level"`   // debug, info, warn, error
	LogColor   string  `toml:"log_color"`   // auto, on, off
}

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Decoder:    "go",
		Width:      0,
		Scale:      2.0,
		Title:      "ASCII art",
		Background: "#383838",
		Foreground: "#e0e0e0",
		FontSize:   12,
		LogLevel:   "info",
		LogColor:   "auto",
	}
}

// Load reads filename on top of the defaults. An empty filename means no
// file and yields the defaults; a named file must exist. Unknown keys are
// rejected so typos do not go unnoticed.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(filename, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s",
			filename, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges and that colors are #rgb or #rrggbb.
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %v", c.FontSize)
	}
	// Empty colors are allowed and leave the color unset.
	colors := []struct{ key, value string }{
		{"background", c.Background},
		{"foreground", c.Foreground},
	}
	for _, col := range colors {
		if col.value == "" {
			continue
		}
		if _, err := img2ascii.ParseColor(col.value); err != nil {
			return fmt.Errorf("%s %q: %w", col.key, col.value, err)
		}
	}
	return nil
}
