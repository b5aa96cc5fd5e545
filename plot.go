package tricolor

import (
	"errors"
	"fmt"
	"io"
)

// Plot holds the decoded content of one renderer invocation.
type Plot struct {
	Sections  Sections
	Points    []Point
	Triangles []Triangle
}

// ReadPlot consumes the selected sections from r in a single forward pass:
// the points section first, then the triangles section. Nothing is returned
// unless every selected section decoded completely.
func ReadPlot(r io.Reader, sections Sections, palette Palette) (*Plot, error) {
	if sections == SectionNone {
		return nil, errors.New("no section selected")
	}
	dec := NewDecoder(r, palette)
	plot := &Plot{Sections: sections}

	if sections.Has(SectionPoints) {
		points, err := dec.DecodePoints()
		if err != nil {
			return nil, fmt.Errorf("reading points: %w", err)
		}
		plot.Points = points
	}
	if sections.Has(SectionTriangles) {
		triangles, err := dec.DecodeTriangles()
		if err != nil {
			return nil, fmt.Errorf("reading triangles: %w", err)
		}
		plot.Triangles = triangles
	}
	return plot, nil
}

// Degenerate returns the indices of triangles whose vertices are collinear.
func (p *Plot) Degenerate() []int {
	var idx []int
	for i, t := range p.Triangles {
		if t.IsDegenerate() {
			idx = append(idx, i)
		}
	}
	return idx
}
