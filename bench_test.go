package tricolor

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func BenchmarkDraw(b *testing.B) {
	g := Generator{Size: 2500, Lower: 0, Upper: 10, Colors: 4}
	points, err := g.Generate(NewRand(1))
	if err != nil {
		b.Fatalf("Failed generating benchmark instance: %v", err)
	}

	var sb strings.Builder
	if err := WriteInstance(&sb, points); err != nil {
		b.Fatalf("Failed writing benchmark instance: %v", err)
	}
	// Fan every consecutive point triple into a triangle of the first one's color.
	fmt.Fprintf(&sb, "%d\n", len(points)/3)
	for i := 0; i+2 < len(points); i += 3 {
		p0, p1, p2 := points[i], points[i+1], points[i+2]
		fmt.Fprintf(&sb, "%g %g %g %g %g %g %d\n", p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, p0.Color)
	}
	input := sb.String()

	opts := DefaultOptions()
	opts.Fill = FillWireframe
	img := &Image{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		plot, err := ReadPlot(strings.NewReader(input), SectionAll, opts.Palette)
		if err != nil {
			b.Fatalf("Failed decoding benchmark input: %v", err)
		}
		fig, err := NewFigure(plot, opts)
		if err != nil {
			b.Fatalf("Failed building figure: %v", err)
		}
		if err := img.Draw(&bytes.Buffer{}, fig); err != nil {
			b.Fatalf("Failed drawing benchmark image: %v", err)
		}
	}
}
