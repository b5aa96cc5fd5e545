package tricolor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	logger := log.New(os.Stderr)
	logger.SetLevel(log.ErrorLevel)
	return logger
}

func TestBatchRun(t *testing.T) {
	dir := t.TempDir()
	seed := int64(100)
	batch := &Batch{
		Generator: Generator{Size: 12, Lower: 10, Upper: 0, Colors: 4},
		Dir:       dir,
		Prefix:    "data",
		Number:    3,
		Seed:      &seed,
		Clock:     quartz.NewMock(t),
		Logger:    quietLogger(),
	}
	paths, err := batch.Run()
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "data0"),
		filepath.Join(dir, "data1"),
		filepath.Join(dir, "data2"),
	}, paths)

	var contents []string
	for _, path := range paths {
		f, err := os.Open(path)
		require.NoError(t, err)
		points, err := ReadInstance(f, DefaultPalette())
		f.Close()
		require.NoError(t, err)
		assert.Len(t, points, 12)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "12\n"))
		contents = append(contents, string(data))
	}
	assert.NotEqual(t, contents[0], contents[1], "instances are drawn independently")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temporary files left behind")
}

func TestBatchSeedIsReproducible(t *testing.T) {
	seed := int64(7)
	run := func() string {
		dir := t.TempDir()
		batch := &Batch{
			Generator: Generator{Size: 5, Lower: 0, Upper: 10, Colors: 4},
			Dir:       dir,
			Prefix:    "inst",
			Number:    1,
			Seed:      &seed,
			Clock:     quartz.NewMock(t),
			Logger:    quietLogger(),
		}
		paths, err := batch.Run()
		require.NoError(t, err)
		data, err := os.ReadFile(paths[0])
		require.NoError(t, err)
		return string(data)
	}
	assert.Equal(t, run(), run())
}

func TestBatchCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "testdata")
	batch := &Batch{
		Generator: Generator{Size: 0, Upper: 10, Colors: 4},
		Dir:       dir,
		Prefix:    "data",
		Number:    1,
		Clock:     quartz.NewMock(t),
		Logger:    quietLogger(),
	}
	paths, err := batch.Run()
	require.NoError(t, err)

	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, "0\n", string(data))
}

func TestBatchValidatesFirst(t *testing.T) {
	dir := t.TempDir()
	batch := &Batch{
		Generator: Generator{Size: -4, Upper: 10, Colors: 4},
		Dir:       dir,
		Prefix:    "data",
		Number:    2,
		Logger:    quietLogger(),
	}
	_, err := batch.Run()
	var ierr *InvalidArgumentError
	require.ErrorAs(t, err, &ierr)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	batch.Generator.Size = 1
	batch.Number = -1
	_, err = batch.Run()
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "number", ierr.Name)
}
