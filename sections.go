package tricolor

import "strings"

// Sections selects which protocol sections the renderer expects on its input.
// The stream carries no section tags, so the selection alone decides how many
// sections are read and in which order.
type Sections uint8

const (
	SectionPoints Sections = 1 << iota
	SectionTriangles

	SectionNone Sections = 0
	SectionAll           = SectionPoints | SectionTriangles
)

// Has reports whether every section of s2 is selected in s.
func (s Sections) Has(s2 Sections) bool {
	return s&s2 == s2 && s2 != SectionNone
}

func (s Sections) String() string {
	var parts []string
	if s.Has(SectionPoints) {
		parts = append(parts, "points")
	}
	if s.Has(SectionTriangles) {
		parts = append(parts, "triangles")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
