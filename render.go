package tricolor

import (
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

const tickCount = 6

var (
	frameColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	wireColor  = color.RGBA{R: 0, G: 0, B: 0, A: 60}
	edgeColor  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// Image draws a figure as a PNG raster.
type Image struct{}

// Draw encodes the figure as PNG into w.
func (im *Image) Draw(w io.Writer, fig *Figure) error {
	ctx := im.Render(fig)
	return ctx.EncodePNG(w)
}

// Raster returns the rendered figure as an image.
func (im *Image) Raster(fig *Figure) image.Image {
	return im.Render(fig).Image()
}

// Render paints the figure into a fresh drawing context.
func (im *Image) Render(fig *Figure) *gg.Context {
	opts := fig.Options
	width, height := opts.Width, opts.Height

	ctx := gg.NewContext(width, height)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.SetRGBA(1, 1, 1, 1)
	ctx.Fill()
	ctx.SetFontFace(basicfont.Face7x13)

	for _, panel := range fig.Panels() {
		lim := panel.Limits(opts.BBox)
		vp := newViewport(panel.Column, float64(width), float64(height), lim, defaultInset)

		ctx.Push()
		ctx.DrawRectangle(vp.x, vp.y, vp.w, vp.h)
		ctx.Clip()
		for _, p := range panel.Patches {
			drawPatch(ctx, vp, p, opts)
		}
		for _, m := range panel.Markers {
			drawMarker(ctx, vp, m, opts)
		}
		ctx.ResetClip()
		ctx.Pop()

		drawFrame(ctx, vp, panel.Title)
	}
	return ctx
}

func drawPatch(ctx *gg.Context, vp viewport, p Patch, opts Options) {
	p0, p1, p2 := p.Nodes[0], p.Nodes[1], p.Nodes[2]

	ctx.Push()
	ctx.MoveTo(vp.project(p0.X, p0.Y))
	ctx.LineTo(vp.project(p1.X, p1.Y))
	ctx.LineTo(vp.project(p2.X, p2.Y))
	ctx.ClosePath()

	switch opts.Fill {
	case FillSolid:
		ctx.SetFillStyle(gg.NewSolidPattern(p.Color))
		ctx.Fill()
	case FillWireframe:
		ctx.SetFillStyle(gg.NewSolidPattern(p.Color))
		ctx.SetStrokeStyle(gg.NewSolidPattern(wireColor))
		ctx.SetLineWidth(opts.LineWidth)
		ctx.FillPreserve()
		ctx.Stroke()
	case FillOutline:
		ctx.SetStrokeStyle(gg.NewSolidPattern(p.Color))
		ctx.SetLineWidth(opts.LineWidth)
		ctx.Stroke()
	}
	ctx.Pop()
}

func drawMarker(ctx *gg.Context, vp viewport, m Marker, opts Options) {
	x, y := vp.project(m.X, m.Y)

	ctx.Push()
	ctx.DrawCircle(x, y, opts.PointRadius)
	ctx.SetFillStyle(gg.NewSolidPattern(m.Color))
	ctx.FillPreserve()
	ctx.SetStrokeStyle(gg.NewSolidPattern(edgeColor))
	ctx.SetLineWidth(0.5)
	ctx.Stroke()
	ctx.Pop()
}

// drawFrame outlines the panel and labels its ticks.
func drawFrame(ctx *gg.Context, vp viewport, title string) {
	ctx.Push()
	ctx.SetColor(frameColor)
	ctx.SetLineWidth(1)
	ctx.DrawRectangle(vp.x, vp.y, vp.w, vp.h)
	ctx.Stroke()

	bottom := vp.y + vp.h
	for _, t := range ticks(vp.lim.XMin, vp.lim.XMax, tickCount) {
		x, _ := vp.project(t, vp.lim.YMin)
		ctx.DrawLine(x, bottom, x, bottom+4)
		ctx.Stroke()
		ctx.DrawStringAnchored(tickLabel(t), x, bottom+6, 0.5, 1)
	}
	for _, t := range ticks(vp.lim.YMin, vp.lim.YMax, tickCount) {
		_, y := vp.project(vp.lim.XMin, t)
		ctx.DrawLine(vp.x-4, y, vp.x, y)
		ctx.Stroke()
		ctx.DrawStringAnchored(tickLabel(t), vp.x-6, y, 1, 0.5)
	}
	ctx.DrawStringAnchored(title, vp.x+vp.w/2, vp.y-6, 0.5, 0)
	ctx.Pop()
}

func tickLabel(v float64) string {
	return strconv.FormatFloat(Round(v, 2), 'f', -1, 64)
}
