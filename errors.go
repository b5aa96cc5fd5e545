package tricolor

import "fmt"

// MalformedLineError is returned when a protocol line has the wrong number of
// tokens or a token that cannot be parsed.
type MalformedLineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: malformed %q: %s", e.Line, e.Text, e.Reason)
}

// UnknownColorError is returned when a color token is not a key of the palette.
type UnknownColorError struct {
	Line  int
	Token string
}

func (e *UnknownColorError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: unknown color index %q", e.Line, e.Token)
	}
	return fmt.Sprintf("unknown color index %q", e.Token)
}

// UnderflowError is returned when the stream ends before a section delivered
// the number of lines announced by its header.
type UnderflowError struct {
	Section Sections
	Want    int
	Got     int
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("%s section: expected %d lines, stream ended after %d", e.Section, e.Want, e.Got)
}

// InvalidArgumentError is returned when a generator parameter is out of range.
type InvalidArgumentError struct {
	Name  string
	Value int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %d, must not be negative", e.Name, e.Value)
}

// BoundsError is returned when the generator interval holds no coordinate
// representable with six fractional digits.
type BoundsError struct {
	Lower, Upper float64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bounds [%g, %g] contain no multiple of 1e-%d", e.Lower, e.Upper, coordDigits)
}
