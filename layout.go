package tricolor

// Panel margins in output units, leaving room for the frame tick labels.
const (
	marginLeft   = 44
	marginRight  = 16
	marginTop    = 24
	marginBottom = 32
)

// viewport maps data coordinates of a panel into output coordinates, with the
// y axis pointing down as in image space.
type viewport struct {
	x, y, w, h float64
	lim        Limits
}

// newViewport places the panel in column col of a two column grid covering a
// width x height canvas, with the given margins.
func newViewport(col int, width, height float64, lim Limits, inset [4]float64) viewport {
	colW := width / 2
	left, right, top, bottom := inset[0], inset[1], inset[2], inset[3]

	return viewport{
		x:   float64(col)*colW + left,
		y:   top,
		w:   Max(colW-left-right, 1),
		h:   Max(height-top-bottom, 1),
		lim: lim,
	}
}

// defaultInset is the margin set used by the raster and vector backends.
var defaultInset = [4]float64{marginLeft, marginRight, marginTop, marginBottom}

// project converts a data coordinate into output space.
func (v viewport) project(x, y float64) (float64, float64) {
	dx := v.lim.XMax - v.lim.XMin
	dy := v.lim.YMax - v.lim.YMin
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	px := v.x + (x-v.lim.XMin)/dx*v.w
	py := v.y + (1-(y-v.lim.YMin)/dy)*v.h
	return px, py
}

// ticks returns evenly spaced tick values across [lo, hi].
func ticks(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
