/*
Package tricolor is a test harness for colored point triangulation solvers.

It synthesizes random instances of colored 2D points and renders a solver's
input and output. Two command line utilities are provided:

	$ trigen --help
	$ triplot --help

An instance file holds the point count on its first line followed by one
"x y c" line per point, c being an index into the color palette
{0:yellow, 1:green, 2:blue, 3:red, 4:cyan}. A solver reads such a file and
writes its triangles as a count followed by "x1 y1 x2 y2 x3 y3 c" lines.

Example to generate an instance and write it to stdout:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/tricolor"
	)

	func main() {
		g := tricolor.Generator{Size: 30, Lower: 0, Upper: 10, Colors: 4}
		points, err := g.Generate(tricolor.NewRand(42))
		if err != nil {
			log.Fatal(err)
		}
		if err := tricolor.WriteInstance(os.Stdout, points); err != nil {
			log.Fatal(err)
		}
	}

Example to render the points and the triangles piped on stdin as PNG:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/tricolor"
	)

	func main() {
		opts := tricolor.DefaultOptions()
		plot, err := tricolor.ReadPlot(os.Stdin, tricolor.SectionAll, opts.Palette)
		if err != nil {
			log.Fatal(err)
		}
		fig, err := tricolor.NewFigure(plot, opts)
		if err != nil {
			log.Fatal(err)
		}
		img := &tricolor.Image{}
		if err := img.Draw(os.Stdout, fig); err != nil {
			log.Fatal(err)
		}
	}
*/
package tricolor
