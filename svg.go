package tricolor

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strings"
)

// SVG draws a figure as a vector document.
type SVG struct {
	Title       string
	Description string
}

// Draw writes the SVG document into w.
func (s *SVG) Draw(w io.Writer, fig *Figure) error {
	opts := fig.Options
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		opts.Width, opts.Height, opts.Width, opts.Height)
	if s.Title != "" {
		fmt.Fprintf(bw, "<title>%s</title>\n", escape(s.Title))
	}
	if s.Description != "" {
		fmt.Fprintf(bw, "<desc>%s</desc>\n", escape(s.Description))
	}
	fmt.Fprintf(bw, "<rect width=\"100%%\" height=\"100%%\" fill=\"white\"/>\n")

	for i, panel := range fig.Panels() {
		lim := panel.Limits(opts.BBox)
		vp := newViewport(panel.Column, float64(opts.Width), float64(opts.Height), lim, defaultInset)
		clip := fmt.Sprintf("panel%d", i)

		fmt.Fprintf(bw, "<clipPath id=\"%s\"><rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\"/></clipPath>\n",
			clip, vp.x, vp.y, vp.w, vp.h)
		fmt.Fprintf(bw, "<g clip-path=\"url(#%s)\">\n", clip)
		for _, p := range panel.Patches {
			fmt.Fprintf(bw, "<polygon points=\"%s\" %s/>\n", polygonPoints(vp, p), patchStyle(p, opts))
		}
		for _, m := range panel.Markers {
			x, y := vp.project(m.X, m.Y)
			fmt.Fprintf(bw, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"%s\" stroke=\"%s\" stroke-width=\"0.5\"/>\n",
				x, y, opts.PointRadius, m.Name, hex(edgeColor))
		}
		fmt.Fprintf(bw, "</g>\n")
		fmt.Fprintf(bw, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"none\" stroke=\"black\"/>\n",
			vp.x, vp.y, vp.w, vp.h)
		fmt.Fprintf(bw, "<text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" font-family=\"monospace\" font-size=\"12\">%s</text>\n",
			vp.x+vp.w/2, vp.y-6, escape(panel.Title))
	}
	fmt.Fprintf(bw, "</svg>\n")

	return bw.Flush()
}

func polygonPoints(vp viewport, p Patch) string {
	coords := make([]string, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		x, y := vp.project(n.X, n.Y)
		coords = append(coords, fmt.Sprintf("%.2f,%.2f", x, y))
	}
	return strings.Join(coords, " ")
}

func patchStyle(p Patch, opts Options) string {
	switch opts.Fill {
	case FillWireframe:
		return fmt.Sprintf("fill=\"%s\" stroke=\"%s\" stroke-opacity=\"%.2f\" stroke-width=\"%.2f\"",
			p.Name, hex(wireColor), float64(wireColor.A)/255, opts.LineWidth)
	case FillOutline:
		return fmt.Sprintf("fill=\"none\" stroke=\"%s\" stroke-width=\"%.2f\"", p.Name, opts.LineWidth)
	default:
		return fmt.Sprintf("fill=\"%s\"", p.Name)
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
