package tricolor

import (
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Preview draws a figure as colored braille characters, for a quick look at
// an instance straight from the terminal.
type Preview struct {
	// Cols and Rows give the size of the whole preview in terminal cells.
	Cols, Rows int
	// Renderer styles the output; nil means a renderer bound to the writer.
	Renderer *lipgloss.Renderer
}

// brailleBuf is a grid of braille cells, each one 2x4 micro pixels wide.
type brailleBuf struct {
	w, h   int
	m      [][]uint8
	colors [][]color.RGBA
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	colors := make([][]color.RGBA, h)
	for i := range m {
		m[i] = make([]uint8, w)
		colors[i] = make([]color.RGBA, w)
	}
	return &brailleBuf{w: w, h: h, m: m, colors: colors}
}

// brailleBits maps a micro pixel offset (column, row) inside a cell to its dot.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro pixel and paints its cell with c.
func (b *brailleBuf) setPixel(mx, my int, c color.RGBA) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
	b.colors[cy][cx] = c
}

// drawLine draws a line on the micro grid using Bresenham.
func (b *brailleBuf) drawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillTriangle sets every micro pixel whose center lies inside the triangle.
func (b *brailleBuf) fillTriangle(pts [3][2]float64, c color.RGBA) {
	minX := int(math.Floor(Min(pts[0][0], pts[1][0], pts[2][0])))
	maxX := int(math.Ceil(Max(pts[0][0], pts[1][0], pts[2][0])))
	minY := int(math.Floor(Min(pts[0][1], pts[1][1], pts[2][1])))
	maxY := int(math.Ceil(Max(pts[0][1], pts[1][1], pts[2][1])))

	minX, maxX = Clamp(minX, 0, b.w*2-1), Clamp(maxX, 0, b.w*2-1)
	minY, maxY = Clamp(minY, 0, b.h*4-1), Clamp(maxY, 0, b.h*4-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if insideTriangle(float64(x)+0.5, float64(y)+0.5, pts) {
				b.setPixel(x, y, c)
			}
		}
	}
}

func insideTriangle(x, y float64, pts [3][2]float64) bool {
	sign := func(a, b [2]float64) float64 {
		return (x-b[0])*(a[1]-b[1]) - (a[0]-b[0])*(y-b[1])
	}
	d1 := sign(pts[0], pts[1])
	d2 := sign(pts[1], pts[2])
	d3 := sign(pts[2], pts[0])

	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

// lines renders the buffer, coloring each cell with the last color painted on it.
func (b *brailleBuf) lines(r *lipgloss.Renderer) []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				sb.WriteRune(' ')
				continue
			}
			style := r.NewStyle().Foreground(lipgloss.Color(hex(b.colors[y][x])))
			sb.WriteString(style.Render(string(rune(0x2800 + int(mask)))))
		}
		out[y] = sb.String()
	}
	return out
}

// Draw writes the preview into w.
func (p *Preview) Draw(w io.Writer, fig *Figure) error {
	r := p.Renderer
	if r == nil {
		r = lipgloss.NewRenderer(w)
	}
	// Two panels side by side, each with a border of one cell on every side
	// and a title line on top.
	cols := Max(p.Cols/2-2, 4)
	rows := Max(p.Rows-3, 2)

	box := r.NewStyle().Border(lipgloss.RoundedBorder()).Width(cols)
	title := r.NewStyle().Bold(true).Width(cols + 2).Align(lipgloss.Center)
	blank := r.NewStyle().Width(cols + 2).Height(rows + 3)

	var panels [2]string
	for i := range panels {
		panels[i] = blank.Render("")
	}
	for _, panel := range fig.Panels() {
		buf := newBrailleBuf(cols, rows)
		vp := viewport{
			w:   float64(cols*2 - 1),
			h:   float64(rows*4 - 1),
			lim: panel.Limits(fig.Options.BBox),
		}
		for _, patch := range panel.Patches {
			drawPreviewPatch(buf, vp, patch, fig.Options.Fill)
		}
		for _, m := range panel.Markers {
			x, y := vp.project(m.X, m.Y)
			buf.setPixel(int(math.Round(x)), int(math.Round(y)), m.Color)
		}
		body := box.Render(strings.Join(buf.lines(r), "\n"))
		panels[panel.Column] = lipgloss.JoinVertical(lipgloss.Left, title.Render(panel.Title), body)
	}

	_, err := io.WriteString(w, lipgloss.JoinHorizontal(lipgloss.Top, panels[0], panels[1])+"\n")
	return err
}

func drawPreviewPatch(buf *brailleBuf, vp viewport, p Patch, fill FillStyle) {
	var pts [3][2]float64
	for i, n := range p.Nodes {
		pts[i][0], pts[i][1] = vp.project(n.X, n.Y)
		if !finite(pts[i][0]) || !finite(pts[i][1]) {
			return
		}
	}
	if fill != FillOutline {
		buf.fillTriangle(pts, p.Color)
	}
	if fill == FillSolid {
		return
	}
	w, h := float64(buf.w*2-1), float64(buf.h*4-1)
	for i := range pts {
		a, b, ok := clipSegment(pts[i], pts[(i+1)%3], w, h)
		if !ok {
			continue
		}
		buf.drawLine(
			int(math.Round(a[0])), int(math.Round(a[1])),
			int(math.Round(b[0])), int(math.Round(b[1])),
			p.Color,
		)
	}
}

// clipSegment clips the segment a-b to the box [0, w] x [0, h] with the
// Liang-Barsky algorithm. It reports false when nothing of the segment is
// inside the box.
func clipSegment(a, b [2]float64, w, h float64) ([2]float64, [2]float64, bool) {
	dx, dy := b[0]-a[0], b[1]-a[1]
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, a[0]},
		{dx, w - a[0]},
		{-dy, a[1]},
		{dy, h - a[1]},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = Max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = Min(t1, r)
		}
	}
	return [2]float64{a[0] + t0*dx, a[1] + t0*dy},
		[2]float64{a[0] + t1*dx, a[1] + t1*dy},
		true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
