package tricolor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionsString(t *testing.T) {
	assert.Equal(t, "none", SectionNone.String())
	assert.Equal(t, "points", SectionPoints.String())
	assert.Equal(t, "triangles", SectionTriangles.String())
	assert.Equal(t, "points+triangles", SectionAll.String())
	assert.True(t, SectionAll.Has(SectionPoints))
	assert.False(t, SectionPoints.Has(SectionTriangles))
	assert.False(t, SectionAll.Has(SectionNone))
}

func TestReadPlotPointsOnly(t *testing.T) {
	// No triangles section is decoded after the points, so trailing garbage
	// is never parsed.
	input := "2\n1.0 2.0 0\n3.5 4.25 3\nnot a triangles section\n"
	plot, err := ReadPlot(strings.NewReader(input), SectionPoints, DefaultPalette())
	require.NoError(t, err)
	assert.Len(t, plot.Points, 2)
	assert.Nil(t, plot.Triangles)

	dec := NewDecoder(strings.NewReader(input), DefaultPalette())
	_, err = dec.DecodePoints()
	require.NoError(t, err)
	assert.Equal(t, 3, dec.Line())
}

func TestReadPlotTrianglesOnly(t *testing.T) {
	plot, err := ReadPlot(strings.NewReader("1\n0.0 0.0 1.0 0.0 0.5 1.0 2\n"), SectionTriangles, DefaultPalette())
	require.NoError(t, err)
	assert.Nil(t, plot.Points)
	require.Len(t, plot.Triangles, 1)
	assert.Equal(t, 2, plot.Triangles[0].Color)
}

func TestReadPlotPointsThenTriangles(t *testing.T) {
	input := "3\n" +
		"0 0 1\n" +
		"4 0 1\n" +
		"0 4 1\n" +
		"1\n" +
		"0 0 4 0 0 4 1\n"
	plot, err := ReadPlot(strings.NewReader(input), SectionAll, DefaultPalette())
	require.NoError(t, err)
	assert.Len(t, plot.Points, 3)
	assert.Len(t, plot.Triangles, 1)
	assert.Equal(t, SectionAll, plot.Sections)
}

func TestReadPlotMissingTrianglesSection(t *testing.T) {
	_, err := ReadPlot(strings.NewReader("1\n0 0 1\n"), SectionAll, DefaultPalette())
	var uerr *UnderflowError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, SectionTriangles, uerr.Section)
	assert.Contains(t, err.Error(), "reading triangles")
}

func TestReadPlotAbortsOnUnknownColor(t *testing.T) {
	plot, err := ReadPlot(strings.NewReader("1\n1.0 2.0 9\n"), SectionAll, DefaultPalette())
	assert.Nil(t, plot)
	var uerr *UnknownColorError
	require.ErrorAs(t, err, &uerr)
}

func TestReadPlotNoSection(t *testing.T) {
	_, err := ReadPlot(strings.NewReader("0\n"), SectionNone, DefaultPalette())
	assert.Error(t, err)
}

func TestPlotDegenerate(t *testing.T) {
	plot := &Plot{Triangles: []Triangle{
		newTriangle(Node{0, 0}, Node{1, 0}, Node{0, 1}, 0),
		newTriangle(Node{0, 0}, Node{1, 1}, Node{2, 2}, 0),
	}}
	assert.Equal(t, []int{1}, plot.Degenerate())
}
