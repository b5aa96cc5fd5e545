package tricolor

import (
	"bufio"
	"io"
	"strconv"
)

// WriteInstance serializes points in the instance file format: the point count
// on the first line, followed by one "x y c" line per point.
func WriteInstance(w io.Writer, points []Point) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strconv.Itoa(len(points)) + "\n"); err != nil {
		return err
	}
	for _, p := range points {
		line := formatCoord(p.X) + " " + formatCoord(p.Y) + " " + strconv.Itoa(p.Color) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadInstance decodes an instance file. It is the points section of the
// renderer protocol read on its own.
func ReadInstance(r io.Reader, palette Palette) ([]Point, error) {
	return NewDecoder(r, palette).DecodePoints()
}

// formatCoord prints a coordinate with at most six fractional digits.
func formatCoord(v float64) string {
	v = Round(v, coordDigits)
	if v == 0 {
		// Drop the sign of negative zero.
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
