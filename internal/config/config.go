// Package config holds the run configuration and the job description read from TOML files.
package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// Config is the tool configuration. Zero values are filled from Default.
type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Theme  ThemeConfig  `toml:"theme"`
	Render RenderConfig `toml:"render"`
	Map    MapConfig    `toml:"map"`
	Log    LogConfig    `toml:"log"`
}

type InputConfig struct {
	Separator string `toml:"separator"`
	Decimal   string `toml:"decimal"`
}

type OutputConfig struct {
	Dir      string  `toml:"dir"`
	Format   string  `toml:"format"`
	WidthIn  float64 `toml:"width_in"`
	HeightIn float64 `toml:"height_in"`
	DPI      int     `toml:"dpi"`
	Save     bool    `toml:"save"`
	Show     bool    `toml:"show"`
}

type ThemeConfig struct {
	// Style is one of darkgrid, whitegrid, dark, white, ticks.
	Style string `toml:"style"`
}

type RenderConfig struct {
	// Trend overlays a least-squares fit on point and line plots.
	Trend bool `toml:"trend"`
}

type MapConfig struct {
	// Boundaries is a GeoJSON FeatureCollection of country polygons.
	Boundaries   string `toml:"boundaries"`
	NameProperty string `toml:"name_property"`
	SkipUnknown  bool   `toml:"skip_unknown"`
	// Extent is lon min, lon max, lat min, lat max.
	Extent []float64 `toml:"extent"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input: InputConfig{Separator: ";", Decimal: ","},
		Output: OutputConfig{
			Dir:      "out",
			Format:   "png",
			WidthIn:  6.4,
			HeightIn: 4.8,
			DPI:      100,
			Show:     true,
		},
		Theme: ThemeConfig{Style: "darkgrid"},
		Map: MapConfig{
			NameProperty: "ADMIN",
			Extent:       []float64{-150, 60, -25, 60},
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load decodes path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be fixed up later.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "png", "jpg", "jpeg":
	default:
		return fmt.Errorf("output.format %q: must be png or jpg", c.Output.Format)
	}
	if c.Output.WidthIn <= 0 || c.Output.HeightIn <= 0 {
		return fmt.Errorf("output size must be positive, got %gx%g", c.Output.WidthIn, c.Output.HeightIn)
	}
	if c.Output.DPI <= 0 {
		return fmt.Errorf("output.dpi must be positive, got %d", c.Output.DPI)
	}
	if len(c.Map.Extent) != 4 {
		return fmt.Errorf("map.extent needs 4 values, got %d", len(c.Map.Extent))
	}
	if _, err := ParseRune(c.Input.Separator); err != nil {
		return fmt.Errorf("input.separator: %w", err)
	}
	if _, err := ParseRune(c.Input.Decimal); err != nil {
		return fmt.Errorf("input.decimal: %w", err)
	}
	return nil
}

// ParseRune turns a one-character form value into a rune. "\t" and "tab" mean a tab.
func ParseRune(s string) (rune, error) {
	switch strings.ToLower(s) {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("want a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
