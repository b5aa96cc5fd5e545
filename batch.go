package tricolor

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/esimov/tricolor/utils"
)

// Batch writes Number independent instances, instance i going to
// <Dir>/<Prefix><i>.
type Batch struct {
	Generator
	Dir    string
	Prefix string
	Number int
	// Seed makes the batch reproducible: instance i is drawn with Seed+i.
	Seed   *int64
	Clock  quartz.Clock
	Logger *log.Logger
}

// Path returns the file an instance index is written to.
func (b *Batch) Path(i int) string {
	return filepath.Join(b.Dir, b.Prefix+strconv.Itoa(i))
}

// Run generates and writes every instance and returns the written paths.
// Parameters are validated before anything is generated.
func (b *Batch) Run() ([]string, error) {
	if err := b.Generator.Validate(); err != nil {
		return nil, err
	}
	if b.Number < 0 {
		return nil, &InvalidArgumentError{Name: "number", Value: b.Number}
	}
	clock := b.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	logger := b.Logger
	if logger == nil {
		logger = log.Default()
	}
	if b.Dir != "" {
		if err := os.MkdirAll(b.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("unable to create output directory: %w", err)
		}
	}

	start := clock.Now()
	paths := make([]string, 0, b.Number)
	for i := 0; i < b.Number; i++ {
		path := b.Path(i)
		if err := b.write(path, b.rand(i)); err != nil {
			return paths, fmt.Errorf("instance %d: %w", i, err)
		}
		logger.Debug("Wrote instance", "path", path, "size", b.Size)
		paths = append(paths, path)
	}

	logger.Info("Generated instances",
		"count", len(paths),
		"size", b.Size,
		"dir", b.Dir,
		"elapsed", utils.FormatTime(clock.Since(start)))

	return paths, nil
}

func (b *Batch) rand(i int) *rand.Rand {
	if b.Seed == nil {
		return NewTimeRand()
	}
	return NewRand(*b.Seed + int64(i))
}

func (b *Batch) write(path string, r *rand.Rand) error {
	points, err := b.Generate(r)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := WriteInstance(&buf, points); err != nil {
		return err
	}
	return utils.WriteFileAtomic(path, buf.Bytes(), 0o644)
}
