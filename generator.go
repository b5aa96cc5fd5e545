package tricolor

import (
	"math"
	"math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Generator synthesizes colored point instances with coordinates bounded by
// the interval spanned by Lower and Upper.
type Generator struct {
	Size   int
	Lower  float64
	Upper  float64
	Colors int
}

// NewRand returns a PCG backed generator seeded deterministically from seed.
func NewRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewTimeRand returns a generator seeded from the wall clock.
func NewTimeRand() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Validate rejects negative sizes and color counts, and bounds too narrow to
// hold a single rounded coordinate.
func (g Generator) Validate() error {
	if g.Size < 0 {
		return &InvalidArgumentError{Name: "size", Value: g.Size}
	}
	if g.Colors < 0 {
		return &InvalidArgumentError{Name: "colors", Value: g.Colors}
	}
	if lo, hi := g.grid(); lo > hi {
		return &BoundsError{Lower: g.Lower, Upper: g.Upper}
	}
	return nil
}

// Bounds returns the sampling interval regardless of the order in which
// Lower and Upper were given.
func (g Generator) Bounds() (lo, hi float64) {
	return Min(g.Lower, g.Upper), Max(g.Lower, g.Upper)
}

// Generate draws Size points. Coordinates are uniform in the bounds and rounded
// to six fractional digits, colors are uniform in the inclusive range [0, Colors].
func (g Generator) Generate(r *rand.Rand) ([]Point, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewTimeRand()
	}
	lo, hi := g.grid()

	points := make([]Point, 0, g.Size)
	for i := 0; i < g.Size; i++ {
		x := g.coord(r, lo, hi)
		y := g.coord(r, lo, hi)
		c := r.IntN(g.Colors + 1)
		points = append(points, Point{X: x, Y: y, Color: c})
	}
	return points, nil
}

// grid returns the smallest and largest multiples of 1e-6 inside the bounds.
// The pair is inverted when the bounds hold none.
func (g Generator) grid() (lo, hi float64) {
	step := math.Pow(10, -coordDigits)
	lower, upper := g.Bounds()

	lo, hi = Round(lower, coordDigits), Round(upper, coordDigits)
	if lo < lower {
		lo = Round(lo+step, coordDigits)
	}
	if hi > upper {
		hi = Round(hi-step, coordDigits)
	}
	return lo, hi
}

// coord samples a single coordinate from the grid interval. Clamping a
// rounded value to grid bounds keeps it rounded.
func (g Generator) coord(r *rand.Rand, lo, hi float64) float64 {
	v := lo + r.Float64()*(hi-lo)
	return Clamp(Round(v, coordDigits), lo, hi)
}
