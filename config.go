package tricolor

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the renderer configuration file.
type Config struct {
	Render *RenderSettings `hcl:"render,block"`
	Colors []ColorConfig  `hcl:"color,block"`
}

// RenderSettings contains the static renderer settings.
type RenderSettings struct {
	Lower       *float64 `hcl:"lower,optional"`
	Upper       *float64 `hcl:"upper,optional"`
	Width       int      `hcl:"width,optional"`
	Height      int      `hcl:"height,optional"`
	Fill        string   `hcl:"fill,optional"`
	LineWidth   float64  `hcl:"line_width,optional"`
	PointRadius float64  `hcl:"point_radius,optional"`
	LogLevel    string   `hcl:"log_level,optional"`
}

// ColorConfig overrides a single palette entry.
type ColorConfig struct {
	Key  string `hcl:"key,label"`
	Name string `hcl:"name"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	opts := DefaultOptions()
	lower, upper := opts.BBox.Lower, opts.BBox.Upper

	return &Config{
		Render: &RenderSettings{
			Lower:       &lower,
			Upper:       &upper,
			Width:       opts.Width,
			Height:      opts.Height,
			Fill:        opts.Fill.String(),
			LineWidth:   opts.LineWidth,
			PointRadius: opts.PointRadius,
			LogLevel:    "info",
		},
	}
}

// LoadConfig loads the renderer configuration from an HCL file. A missing
// file yields the default configuration.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Render == nil {
		config.Render = &RenderSettings{}
	}

	// Apply defaults for missing values
	def := DefaultConfig().Render
	if config.Render.Lower == nil {
		config.Render.Lower = def.Lower
	}
	if config.Render.Upper == nil {
		config.Render.Upper = def.Upper
	}
	if config.Render.Width == 0 {
		config.Render.Width = def.Width
	}
	if config.Render.Height == 0 {
		config.Render.Height = def.Height
	}
	if config.Render.Fill == "" {
		config.Render.Fill = def.Fill
	}
	if config.Render.LineWidth == 0 {
		config.Render.LineWidth = def.LineWidth
	}
	if config.Render.PointRadius == 0 {
		config.Render.PointRadius = def.PointRadius
	}
	if config.Render.LogLevel == "" {
		config.Render.LogLevel = def.LogLevel
	}

	return &config, nil
}

// Validate validates the renderer configuration.
func (c *Config) Validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("invalid canvas size: %dx%d", c.Render.Width, c.Render.Height)
	}
	if _, ok := ParseFillStyle(c.Render.Fill); !ok {
		return fmt.Errorf("invalid fill style: %s", c.Render.Fill)
	}
	if c.Render.LineWidth < 0 {
		return fmt.Errorf("invalid line width: %g", c.Render.LineWidth)
	}
	if c.Render.PointRadius < 0 {
		return fmt.Errorf("invalid point radius: %g", c.Render.PointRadius)
	}
	switch c.Render.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Render.LogLevel)
	}
	if _, err := c.Palette(); err != nil {
		return err
	}
	return nil
}

// Palette returns the default palette with the configured overrides applied.
func (c *Config) Palette() (Palette, error) {
	palette := DefaultPalette()
	for _, entry := range c.Colors {
		var err error
		if palette, err = palette.With(entry.Key, entry.Name); err != nil {
			return Palette{}, err
		}
	}
	return palette, nil
}

// Options converts the configuration into rendering options.
func (c *Config) Options() (Options, error) {
	palette, err := c.Palette()
	if err != nil {
		return Options{}, err
	}
	fill, ok := ParseFillStyle(c.Render.Fill)
	if !ok {
		return Options{}, fmt.Errorf("invalid fill style: %s", c.Render.Fill)
	}
	opts := DefaultOptions()
	if c.Render.Lower != nil {
		opts.BBox.Lower = *c.Render.Lower
	}
	if c.Render.Upper != nil {
		opts.BBox.Upper = *c.Render.Upper
	}
	opts.Width = c.Render.Width
	opts.Height = c.Render.Height
	opts.Fill = fill
	opts.LineWidth = c.Render.LineWidth
	opts.PointRadius = c.Render.PointRadius
	opts.Palette = palette

	return opts, nil
}
