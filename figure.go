package tricolor

import (
	"image/color"
	"io"
)

// Fill styles applied to every triangle. The style is renderer configuration,
// the protocol never selects it.
const (
	FillSolid FillStyle = iota
	FillWireframe
	FillOutline
)

// FillStyle defines how triangles are painted.
type FillStyle int

func (f FillStyle) String() string {
	switch f {
	case FillSolid:
		return "solid"
	case FillWireframe:
		return "wireframe"
	case FillOutline:
		return "outline"
	}
	return "unknown"
}

// ParseFillStyle converts a configuration value into a FillStyle.
func ParseFillStyle(s string) (FillStyle, bool) {
	for _, f := range []FillStyle{FillSolid, FillWireframe, FillOutline} {
		if f.String() == s {
			return f, true
		}
	}
	return FillSolid, false
}

// BBox is the interval applied to both axes of the result panel.
type BBox struct {
	Lower, Upper float64
}

// DefaultBBox is the (0, 10) bounding box.
var DefaultBBox = BBox{Lower: 0, Upper: 10}

// Options : type with rendering options
type Options struct {
	Width       int
	Height      int
	BBox        BBox
	Fill        FillStyle
	LineWidth   float64
	PointRadius float64
	Palette     Palette
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Width:       1200,
		Height:      600,
		BBox:        DefaultBBox,
		Fill:        FillSolid,
		LineWidth:   1,
		PointRadius: 3,
		Palette:     DefaultPalette(),
	}
}

// Limits are the data coordinates visible in a panel.
type Limits struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Marker is a scattered point ready for drawing.
type Marker struct {
	X, Y  float64
	Name  string
	Color color.RGBA
}

// Patch is a closed triangle ready for drawing.
type Patch struct {
	Nodes [3]Node
	Name  string
	Color color.RGBA
}

// Axes is a single panel of the figure.
type Axes struct {
	Title   string
	Markers []Marker
	Patches []Patch

	limits Limits
	fixed  bool
}

// SetLimits pins both axes of the panel to the bounding box.
func (a *Axes) SetLimits(b BBox) {
	lo, hi := Min(b.Lower, b.Upper), Max(b.Lower, b.Upper)
	a.limits = Limits{XMin: lo, XMax: hi, YMin: lo, YMax: hi}
	a.fixed = true
}

// Fixed reports whether the limits were set explicitly.
func (a *Axes) Fixed() bool {
	return a.fixed
}

// Limits returns the visible data range. Panels without explicit limits are
// autoscaled to their content with a 5% margin, empty panels fall back to def.
func (a *Axes) Limits(def BBox) Limits {
	if a.fixed {
		return a.limits
	}
	var xs, ys []float64
	for _, m := range a.Markers {
		xs = append(xs, m.X)
		ys = append(ys, m.Y)
	}
	for _, p := range a.Patches {
		for _, n := range p.Nodes {
			xs = append(xs, n.X)
			ys = append(ys, n.Y)
		}
	}
	if len(xs) == 0 {
		lo, hi := Min(def.Lower, def.Upper), Max(def.Lower, def.Upper)
		return Limits{XMin: lo, XMax: hi, YMin: lo, YMax: hi}
	}
	xmin, xmax := margin(Min(xs...), Max(xs...))
	ymin, ymax := margin(Min(ys...), Max(ys...))

	return Limits{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

func margin(lo, hi float64) (float64, float64) {
	if hi-lo == 0 {
		return lo - 0.5, hi + 0.5
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// Figure is the two panel layout handed to a drawing backend: the input
// panel on the left and the result panel on the right. A panel is nil when
// no selected section draws into it.
type Figure struct {
	Input   *Axes
	Result  *Axes
	Options Options
}

// NewFigure lays out a decoded plot. Points are scattered on both panels,
// triangles are patched on the result panel whose limits are then set to the
// bounding box.
func NewFigure(plot *Plot, opts Options) (*Figure, error) {
	fig := &Figure{Options: opts}

	if plot.Sections.Has(SectionPoints) {
		fig.Result = &Axes{Title: "result"}
		fig.Input = &Axes{Title: "input"}

		for _, p := range plot.Points {
			name, rgba, err := resolve(opts.Palette, p.Color)
			if err != nil {
				return nil, err
			}
			m := Marker{X: p.X, Y: p.Y, Name: name, Color: rgba}
			fig.Result.Markers = append(fig.Result.Markers, m)
			fig.Input.Markers = append(fig.Input.Markers, m)
		}
	}

	if plot.Sections.Has(SectionTriangles) {
		if fig.Result == nil {
			fig.Result = &Axes{Title: "result"}
		}
		for _, t := range plot.Triangles {
			name, rgba, err := resolve(opts.Palette, t.Color)
			if err != nil {
				return nil, err
			}
			fig.Result.Patches = append(fig.Result.Patches, Patch{Nodes: t.Nodes, Name: name, Color: rgba})
		}
		fig.Result.SetLimits(opts.BBox)
	}
	return fig, nil
}

func resolve(p Palette, index int) (string, color.RGBA, error) {
	name, err := p.Name(index)
	if err != nil {
		return "", color.RGBA{}, err
	}
	rgba, err := p.RGBA(index)
	return name, rgba, err
}

// Panels returns the figure panels in left to right order along with their
// column index in the two column grid.
func (f *Figure) Panels() []Panel {
	var panels []Panel
	if f.Input != nil {
		panels = append(panels, Panel{Column: 0, Axes: f.Input})
	}
	if f.Result != nil {
		panels = append(panels, Panel{Column: 1, Axes: f.Result})
	}
	return panels
}

// Panel places an Axes in the figure grid.
type Panel struct {
	Column int
	*Axes
}

// Drawer is implemented by every figure backend.
type Drawer interface {
	Draw(w io.Writer, fig *Figure) error
}
