package tricolor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	pointTokens    = 3
	triangleTokens = 7

	// maxPrealloc caps the capacity reserved from a section header, which
	// is untrusted until the announced lines actually arrive.
	maxPrealloc = 4096
)

// Decoder reads protocol sections from a forward-only line stream. Each
// section is a count line followed by that many data lines.
type Decoder struct {
	scanner *bufio.Scanner
	palette Palette
	line    int
}

// NewDecoder returns a decoder reading from r and resolving color tokens
// through palette.
func NewDecoder(r io.Reader, palette Palette) *Decoder {
	return &Decoder{
		scanner: bufio.NewScanner(r),
		palette: palette,
	}
}

// Line returns the number of lines consumed so far.
func (d *Decoder) Line() int {
	return d.line
}

// DecodePoints reads a points section: a count n, then n "x y c" lines.
func (d *Decoder) DecodePoints() ([]Point, error) {
	n, err := d.header(SectionPoints)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, Min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		text, err := d.next(SectionPoints, n, i)
		if err != nil {
			return nil, err
		}
		fields, err := d.fields(text, pointTokens)
		if err != nil {
			return nil, err
		}
		coords, err := d.floats(text, fields[:2])
		if err != nil {
			return nil, err
		}
		c, err := d.color(fields[2])
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: coords[0], Y: coords[1], Color: c})
	}
	return points, nil
}

// DecodeTriangles reads a triangles section: a count m, then m
// "x1 y1 x2 y2 x3 y3 c" lines.
func (d *Decoder) DecodeTriangles() ([]Triangle, error) {
	m, err := d.header(SectionTriangles)
	if err != nil {
		return nil, err
	}

	triangles := make([]Triangle, 0, Min(m, maxPrealloc))
	for i := 0; i < m; i++ {
		text, err := d.next(SectionTriangles, m, i)
		if err != nil {
			return nil, err
		}
		fields, err := d.fields(text, triangleTokens)
		if err != nil {
			return nil, err
		}
		v, err := d.floats(text, fields[:6])
		if err != nil {
			return nil, err
		}
		c, err := d.color(fields[6])
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, newTriangle(
			Node{X: v[0], Y: v[1]},
			Node{X: v[2], Y: v[3]},
			Node{X: v[4], Y: v[5]},
			c,
		))
	}
	return triangles, nil
}

// header reads the count line opening a section.
func (d *Decoder) header(section Sections) (int, error) {
	text, err := d.next(section, 1, 0)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, &MalformedLineError{Line: d.line, Text: text, Reason: "expected a count"}
	}
	if n < 0 {
		return 0, &MalformedLineError{Line: d.line, Text: text, Reason: "negative count"}
	}
	return n, nil
}

// next returns the following line, or an UnderflowError if the stream is
// exhausted before want lines were read.
func (d *Decoder) next(section Sections, want, got int) (string, error) {
	if !d.scanner.Scan() {
		if err := d.scanner.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return "", &MalformedLineError{Line: d.line + 1, Reason: "line too long"}
			}
			return "", fmt.Errorf("line %d: %w", d.line+1, err)
		}
		return "", &UnderflowError{Section: section, Want: want, Got: got}
	}
	d.line++
	return d.scanner.Text(), nil
}

func (d *Decoder) fields(text string, want int) ([]string, error) {
	fields := strings.Fields(text)
	if len(fields) != want {
		return nil, &MalformedLineError{
			Line:   d.line,
			Text:   text,
			Reason: "expected " + strconv.Itoa(want) + " tokens, got " + strconv.Itoa(len(fields)),
		}
	}
	return fields, nil
}

func (d *Decoder) floats(text string, tokens []string) ([]float64, error) {
	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &MalformedLineError{Line: d.line, Text: text, Reason: "bad coordinate " + strconv.Quote(tok)}
		}
		out[i] = v
	}
	return out, nil
}

func (d *Decoder) color(token string) (int, error) {
	idx, _, err := d.palette.Lookup(token)
	if err != nil {
		return 0, &UnknownColorError{Line: d.line, Token: token}
	}
	return idx, nil
}
