package tricolor

import "math"

// Point is a colored 2D point. Color is an index into a Palette.
type Point struct {
	X, Y  float64
	Color int
}

// Node is a triangle vertex.
type Node struct {
	X, Y float64
}

// Triangle is a colored triangle as emitted by the triangulation solver.
// The vertices are not required to be consistently wound.
type Triangle struct {
	Nodes [3]Node
	Color int
}

// newTriangle builds a triangle from its three vertices and color index.
func newTriangle(p0, p1, p2 Node, color int) Triangle {
	return Triangle{
		Nodes: [3]Node{p0, p1, p2},
		Color: color,
	}
}

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	p0, p1, p2 := t.Nodes[0], t.Nodes[1], t.Nodes[2]
	ax, ay := p1.X-p0.X, p1.Y-p0.Y
	bx, by := p2.X-p0.X, p2.Y-p0.Y

	return math.Abs(ax*by-ay*bx) * 0.5
}

// IsDegenerate reports whether the three vertices are (nearly) collinear.
func (t Triangle) IsDegenerate() bool {
	return t.Area() < 0.0001
}

// Centroid returns the barycenter of the triangle.
func (t Triangle) Centroid() Node {
	p0, p1, p2 := t.Nodes[0], t.Nodes[1], t.Nodes[2]
	return Node{
		X: (p0.X + p1.X + p2.X) / 3,
		Y: (p0.Y + p1.Y + p2.Y) / 3,
	}
}
