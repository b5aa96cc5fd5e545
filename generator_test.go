package tricolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSize(t *testing.T) {
	r := NewRand(1)
	for _, size := range []int{0, 1, 3, 100, 1000} {
		g := Generator{Size: size, Lower: 0, Upper: 10, Colors: 4}
		points, err := g.Generate(r)
		require.NoError(t, err)
		assert.Len(t, points, size)
	}
}

func TestGenerateBounds(t *testing.T) {
	tests := []struct {
		name         string
		lower, upper float64
		colors       int
	}{
		{"default", 0, 10, 4},
		{"inverted", 10, 0, 4},
		{"negative", -5.5, -1.25, 2},
		{"straddling", -3, 3, 0},
		{"degenerate", 2.5, 2.5, 4},
		{"unaligned", 0.1234567, 0.1234599, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Generator{Size: 500, Lower: tt.lower, Upper: tt.upper, Colors: tt.colors}
			points, err := g.Generate(NewRand(7))
			require.NoError(t, err)

			lo, hi := Min(tt.lower, tt.upper), Max(tt.lower, tt.upper)
			for _, p := range points {
				assert.GreaterOrEqual(t, p.X, lo)
				assert.LessOrEqual(t, p.X, hi)
				assert.GreaterOrEqual(t, p.Y, lo)
				assert.LessOrEqual(t, p.Y, hi)
				assert.GreaterOrEqual(t, p.Color, 0)
				assert.LessOrEqual(t, p.Color, tt.colors)
			}
		})
	}
}

func TestGenerateRoundsToSixDigits(t *testing.T) {
	g := Generator{Size: 200, Lower: 0, Upper: 10, Colors: 4}
	points, err := g.Generate(NewRand(3))
	require.NoError(t, err)

	for _, p := range points {
		assert.Equal(t, Round(p.X, 6), p.X)
		assert.Equal(t, Round(p.Y, 6), p.Y)
	}
}

func TestGenerateUnalignedBoundsStayRounded(t *testing.T) {
	g := Generator{Size: 300, Lower: 0.1234567, Upper: 0.1234599, Colors: 1}
	points, err := g.Generate(NewRand(5))
	require.NoError(t, err)

	for _, p := range points {
		assert.Equal(t, Round(p.X, 6), p.X)
		assert.GreaterOrEqual(t, p.X, 0.123457)
		assert.LessOrEqual(t, p.X, 0.123459)
	}
}

func TestGenerateRejectsBoundsWithoutRoundedValue(t *testing.T) {
	g := Generator{Size: 3, Lower: 0.1234561, Upper: 0.1234564, Colors: 4}
	_, err := g.Generate(NewRand(1))
	var berr *BoundsError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, 0.1234561, berr.Lower)

	_, err = (&Batch{Generator: g, Dir: t.TempDir(), Prefix: "data", Number: 1}).Run()
	require.ErrorAs(t, err, &berr)
}

func TestGenerateCoversInclusiveColorRange(t *testing.T) {
	g := Generator{Size: 2000, Lower: 0, Upper: 1, Colors: 4}
	points, err := g.Generate(NewRand(11))
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, p := range points {
		seen[p.Color] = true
	}
	assert.Len(t, seen, 5, "colors=4 must produce the five indices 0..4")
}

func TestGenerateDeterministicSeed(t *testing.T) {
	g := Generator{Size: 50, Lower: 0, Upper: 10, Colors: 4}
	a, err := g.Generate(NewRand(42))
	require.NoError(t, err)
	b, err := g.Generate(NewRand(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := g.Generate(NewRand(43))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerateRejectsNegativeArguments(t *testing.T) {
	var ierr *InvalidArgumentError

	_, err := Generator{Size: -1, Upper: 10, Colors: 4}.Generate(NewRand(1))
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "size", ierr.Name)

	_, err = Generator{Size: 3, Upper: 10, Colors: -1}.Generate(NewRand(1))
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "colors", ierr.Name)
}

func TestGenerateScenario(t *testing.T) {
	g := Generator{Size: 3, Lower: 0, Upper: 10, Colors: 4}
	points, err := g.Generate(nil)
	require.NoError(t, err)
	require.Len(t, points, 3)
	for _, p := range points {
		assert.True(t, p.X >= 0 && p.X <= 10)
		assert.True(t, p.Y >= 0 && p.Y <= 10)
		assert.True(t, p.Color >= 0 && p.Color <= 4)
	}
}

func TestRoundAndClamp(t *testing.T) {
	assert.Equal(t, 1.234568, Round(1.23456789, 6))
	assert.Equal(t, -2.5, Round(-2.49999999, 6))
	assert.Equal(t, 3, Clamp(5, 0, 3))
	assert.Equal(t, 0.0, Clamp(-1.0, 0, 3))
	assert.Equal(t, 2, Min(4, 2, 9))
	assert.Equal(t, 9, Max(4, 2, 9))
}
