package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/esimov/tricolor"
	"github.com/esimov/tricolor/utils"
)

// version is set by ldflags during build
var version = "dev"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	countStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// CLI holds the generator command line.
type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Size     int              `arg:"" help:"Size of the problem instance."`
	Lower    float64          `short:"l" default:"0" help:"Lower bound of coordinate."`
	Upper    float64          `short:"u" default:"10" help:"Upper bound of coordinate."`
	Number   int              `short:"n" default:"1" help:"Number of instances to generate."`
	Prefix   string           `short:"p" default:"data" help:"Prefix of file to store instance in."`
	Dir      string           `short:"d" default:"." type:"path" help:"Directory the instances are written to."`
	Colors   int              `short:"c" default:"4" help:"Highest color index drawn."`
	Seed     *int64           `help:"Random seed for reproducible instances."`
	Stdout   bool             `help:"Write a single instance to stdout instead of files."`
	LogLevel string           `default:"info" enum:"debug,info,warn,error" help:"Log level."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("trigen"),
		kong.Description("Generates colored point instances for triangulation solvers."),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)
	logger := utils.NewLogger(os.Stderr, cli.LogLevel)
	ctx.FatalIfErrorf(cli.Run(logger))
}

// Run generates the requested instances.
func (c *CLI) Run(logger *log.Logger) error {
	gen := tricolor.Generator{
		Size:   c.Size,
		Lower:  c.Lower,
		Upper:  c.Upper,
		Colors: c.Colors,
	}
	if c.Stdout {
		return c.writeStdout(gen)
	}

	batch := &tricolor.Batch{
		Generator: gen,
		Dir:       c.Dir,
		Prefix:    c.Prefix,
		Number:    c.Number,
		Seed:      c.Seed,
		Clock:     quartz.NewReal(),
		Logger:    logger,
	}

	interactive := utils.IsTerminal(os.Stderr)
	var spinner *utils.Spinner
	if interactive {
		spinner = utils.NewSpinner(os.Stderr)
		spinner.Start("Generating instances...")
	}
	paths, err := batch.Run()
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	if interactive {
		fmt.Fprintf(os.Stderr, "Generated %s instances of %s points %s\n",
			countStyle.Render(fmt.Sprint(len(paths))),
			countStyle.Render(fmt.Sprint(c.Size)),
			successStyle.Render("✓"))
	}
	return nil
}

func (c *CLI) writeStdout(gen tricolor.Generator) error {
	r := tricolor.NewTimeRand()
	if c.Seed != nil {
		r = tricolor.NewRand(*c.Seed)
	}
	points, err := gen.Generate(r)
	if err != nil {
		return err
	}
	return tricolor.WriteInstance(os.Stdout, points)
}
