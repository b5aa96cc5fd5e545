package tricolor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	require.Equal(t, 5, p.Len())
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, p.Keys())

	want := map[string]string{"0": "yellow", "1": "green", "2": "blue", "3": "red", "4": "cyan"}
	for key, name := range want {
		idx, got, err := p.Lookup(key)
		require.NoError(t, err, "key %s", key)
		assert.Equal(t, name, got)
		assert.Equal(t, key, string(rune('0'+idx)))
	}
}

func TestPaletteLookupUnknown(t *testing.T) {
	p := DefaultPalette()
	for _, token := range []string{"5", "9", "-1", "00", "1.0", "", "red"} {
		_, _, err := p.Lookup(token)
		var uerr *UnknownColorError
		require.ErrorAs(t, err, &uerr, "token %q", token)
		assert.Equal(t, token, uerr.Token)
	}
}

func TestPaletteRGBA(t *testing.T) {
	p := DefaultPalette()

	c, err := p.RGBA(3)
	require.NoError(t, err)
	assert.Equal(t, colornames.Red, c)

	_, err = p.RGBA(7)
	assert.Error(t, err)
}

func TestPaletteWithIsCopy(t *testing.T) {
	p := DefaultPalette()
	q, err := p.With("4", "magenta")
	require.NoError(t, err)

	name, err := q.Name(4)
	require.NoError(t, err)
	assert.Equal(t, "magenta", name)

	name, err = p.Name(4)
	require.NoError(t, err)
	assert.Equal(t, "cyan", name, "original palette must not change")

	q, err = p.With("5", "orange")
	require.NoError(t, err)
	assert.Equal(t, 6, q.Len())
	assert.Equal(t, 5, p.Len())
}

func TestNewPaletteRejectsBadEntries(t *testing.T) {
	_, err := NewPalette(map[string]string{"x": "red"})
	assert.Error(t, err)

	_, err = NewPalette(map[string]string{"01": "red"})
	assert.Error(t, err)

	_, err = NewPalette(map[string]string{"0": "not-a-color"})
	assert.Error(t, err)

	p, err := NewPalette(map[string]string{"0": "black", "1": "white"})
	require.NoError(t, err)
	c, err := p.RGBA(1)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c)
}
