package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/esimov/tricolor"
	"github.com/esimov/tricolor/utils"
)

// version is set by ldflags during build
var version = "dev"

// CLI holds the renderer command line.
type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Points    bool             `short:"p" help:"Read a points section from stdin."`
	Triangles bool             `short:"t" help:"Read a triangles section from stdin."`
	All       bool             `short:"a" help:"Read a points section followed by a triangles section."`
	Lower     *float64         `short:"l" help:"Lower bound of both axes (overrides config)."`
	Upper     *float64         `short:"u" help:"Upper bound of both axes (overrides config)."`
	Outline   bool             `xor:"fill" help:"Draw triangle outlines only."`
	Wireframe bool             `xor:"fill" help:"Draw filled triangles with a wireframe."`
	Out       string           `short:"o" type:"path" help:"Output file, PNG or SVG depending on the extension."`
	Preview   bool             `help:"Print a terminal preview even when writing a file."`
	Config    string           `short:"c" default:"triplot.hcl" type:"path" help:"Path to HCL configuration file."`
	LogLevel  string           `help:"Log level (overrides config)."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("triplot"),
		kong.Description("Plots colored points and triangles read from stdin."),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)
	ctx.FatalIfErrorf(cli.Run(os.Stdin, os.Stdout))
}

// Sections returns the protocol sections selected by the mode flags.
func (c *CLI) Sections() tricolor.Sections {
	sections := tricolor.SectionNone
	if c.Points || c.All {
		sections |= tricolor.SectionPoints
	}
	if c.Triangles || c.All {
		sections |= tricolor.SectionTriangles
	}
	return sections
}

// Load reads the configuration file and applies the command line overrides.
func (c *CLI) Load() (*tricolor.Config, error) {
	cfg, err := tricolor.LoadConfig(c.Config)
	if err != nil {
		return nil, err
	}
	if c.Lower != nil {
		cfg.Render.Lower = c.Lower
	}
	if c.Upper != nil {
		cfg.Render.Upper = c.Upper
	}
	if c.Outline {
		cfg.Render.Fill = tricolor.FillOutline.String()
	}
	if c.Wireframe {
		cfg.Render.Fill = tricolor.FillWireframe.String()
	}
	if c.LogLevel != "" {
		cfg.Render.LogLevel = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Run decodes the selected sections from in and draws them.
func (c *CLI) Run(in io.Reader, out io.Writer) error {
	sections := c.Sections()
	if sections == tricolor.SectionNone {
		return errors.New("select at least one of --points, --triangles or --all")
	}
	cfg, err := c.Load()
	if err != nil {
		return err
	}
	logger := utils.NewLogger(os.Stderr, cfg.Render.LogLevel)

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	plot, err := tricolor.ReadPlot(in, sections, opts.Palette)
	if err != nil {
		return err
	}
	logger.Debug("Decoded input",
		"sections", sections,
		"points", len(plot.Points),
		"triangles", len(plot.Triangles))
	if bad := plot.Degenerate(); len(bad) > 0 {
		logger.Warn("Degenerate triangles in input", "count", len(bad), "first", bad[0])
	}

	fig, err := tricolor.NewFigure(plot, opts)
	if err != nil {
		return err
	}
	if c.Out != "" {
		if err := c.save(fig, logger); err != nil {
			return err
		}
	}
	if c.Out == "" || c.Preview {
		cols, rows := utils.TerminalSize(os.Stdout, 80, 24)
		preview := &tricolor.Preview{Cols: cols, Rows: rows}
		return preview.Draw(out, fig)
	}
	return nil
}

func (c *CLI) save(fig *tricolor.Figure, logger *log.Logger) error {
	var buf bytes.Buffer
	if err := drawerFor(c.Out).Draw(&buf, fig); err != nil {
		return fmt.Errorf("unable to draw %s: %w", c.Out, err)
	}
	if err := utils.WriteFileAtomic(c.Out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	logger.Info("Saved figure", "path", c.Out)
	return nil
}

// drawerFor picks the backend matching the output file extension.
func drawerFor(path string) tricolor.Drawer {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return &tricolor.SVG{
			Title:       "Colored triangulation",
			Description: "Solver input and output rendered by triplot.",
		}
	default:
		return &tricolor.Image{}
	}
}
