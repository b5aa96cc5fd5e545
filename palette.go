package tricolor

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"

	"golang.org/x/image/colornames"
)

// Palette maps a color token, as it appears in the instance file and in the
// renderer protocol, to a display color name. A Palette is never mutated after
// construction; With returns a modified copy.
type Palette struct {
	names map[string]string
}

// defaultColors holds the five colors shared by the generator and the renderer.
var defaultColors = [...]string{"yellow", "green", "blue", "red", "cyan"}

// DefaultPalette returns the five entry palette {0:yellow, 1:green, 2:blue, 3:red, 4:cyan}.
func DefaultPalette() Palette {
	names := make(map[string]string, len(defaultColors))
	for i, name := range defaultColors {
		names[strconv.Itoa(i)] = name
	}
	return Palette{names: names}
}

// NewPalette builds a palette from a token to color name mapping. Tokens must be
// non-negative decimal integers and names must be known SVG color names.
func NewPalette(entries map[string]string) (Palette, error) {
	names := make(map[string]string, len(entries))
	for key, name := range entries {
		if err := checkEntry(key, name); err != nil {
			return Palette{}, err
		}
		names[key] = name
	}
	return Palette{names: names}, nil
}

// With returns a copy of the palette where key is mapped to name.
func (p Palette) With(key, name string) (Palette, error) {
	if err := checkEntry(key, name); err != nil {
		return Palette{}, err
	}
	names := make(map[string]string, len(p.names)+1)
	for k, v := range p.names {
		names[k] = v
	}
	names[key] = name
	return Palette{names: names}, nil
}

func checkEntry(key, name string) error {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 || strconv.Itoa(idx) != key {
		return fmt.Errorf("palette key %q is not a color index", key)
	}
	if _, ok := colornames.Map[name]; !ok {
		return fmt.Errorf("palette key %q: unknown color name %q", key, name)
	}
	return nil
}

// Lookup resolves a color token to its index and display name.
func (p Palette) Lookup(token string) (int, string, error) {
	name, ok := p.names[token]
	if !ok {
		return 0, "", &UnknownColorError{Token: token}
	}
	idx, _ := strconv.Atoi(token)
	return idx, name, nil
}

// Name returns the display name of a color index.
func (p Palette) Name(index int) (string, error) {
	_, name, err := p.Lookup(strconv.Itoa(index))
	return name, err
}

// RGBA returns the display color of a color index.
func (p Palette) RGBA(index int) (color.RGBA, error) {
	name, err := p.Name(index)
	if err != nil {
		return color.RGBA{}, err
	}
	return colornames.Map[name], nil
}

// Len returns the number of palette entries.
func (p Palette) Len() int {
	return len(p.names)
}

// Keys returns the palette tokens in ascending index order.
func (p Palette) Keys() []string {
	keys := make([]string, 0, len(p.names))
	for k := range p.names {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})
	return keys
}
