// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/wavetable/audio"
	"github.com/ik5/wavetable/formats/wav"
	"github.com/ik5/wavetable/table"
)

const (
	DefaultShape       = audio.ShapeTriangle
	DefaultSamples     = 2048
	DefaultSampleRate  = 48000
	DefaultChannels    = 1
	DefaultSampleWidth = 4
)

// Params selects the cycle to synthesize and how it is stored. Zero fields
// take the package defaults.
type Params struct {
	Shape       string
	Samples     int
	SampleRate  int
	Channels    int
	SampleWidth int // bytes per sample: 2, 3 or 4

	// Shapes resolves Shape. Nil means audio.DefaultShapes().
	Shapes *audio.Registry
}

func (p Params) withDefaults() Params {
	if p.Shape == "" {
		p.Shape = DefaultShape
	}
	if p.Samples == 0 {
		p.Samples = DefaultSamples
	}
	if p.SampleRate == 0 {
		p.SampleRate = DefaultSampleRate
	}
	if p.Channels == 0 {
		p.Channels = DefaultChannels
	}
	if p.SampleWidth == 0 {
		p.SampleWidth = DefaultSampleWidth
	}
	if p.Shapes == nil {
		p.Shapes = audio.DefaultShapes()
	}

	return p
}

// Synthesize generates one cycle and writes it to w as a WAV file, with the
// cycle's samples repeated across every channel. It returns the cycle.
func Synthesize(w io.WriteSeeker, p Params) ([]float64, error) {
	p = p.withDefaults()

	if _, err := wav.FormatFor(p.SampleWidth); err != nil {
		return nil, err
	}

	cycle, err := p.Shapes.Generate(p.Shape, p.Samples)
	if err != nil {
		return nil, err
	}

	src, err := audio.NewCycleSource(cycle, p.SampleRate, p.Channels)
	if err != nil {
		return nil, err
	}

	if _, err := wav.Encode(w, src, p.SampleWidth); err != nil {
		return nil, fmt.Errorf("encoding %s cycle: %w", p.Shape, err)
	}

	return cycle, nil
}

// SynthesizeFile is Synthesize into a newly created file at path.
func SynthesizeFile(path string, p Params) (cycle []float64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", path, cerr))
		}
	}()

	return Synthesize(f, p)
}

type exportConfig struct {
	length int
}

// ExportOption tunes Export.
type ExportOption func(*exportConfig)

// WithLength resizes every channel of the decoded cycle to frames frames
// before normalizing, for firmware whose table length differs from the file.
func WithLength(frames int) ExportOption {
	return func(c *exportConfig) {
		c.length = frames
	}
}

// Export decodes a WAV cycle and turns it into a normalized fixed-point
// table.
func Export(r io.ReadSeeker, opts ...ExportOption) (*table.Table, error) {
	c, err := wav.Decode(r)
	if err != nil {
		return nil, err
	}

	return exportContainer(c, opts)
}

// ExportFile is Export reading from path. The file is closed before
// returning.
func ExportFile(path string, opts ...ExportOption) (*table.Table, error) {
	c, err := wav.DecodeFile(path)
	if err != nil {
		return nil, err
	}

	return exportContainer(c, opts)
}

func exportContainer(c *wav.Container, opts []ExportOption) (*table.Table, error) {
	var cfg exportConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.length < 0 {
		return nil, fmt.Errorf("table length %d: %w", cfg.length, audio.ErrInvalidSampleCount)
	}

	buf, err := c.Samples()
	if err != nil {
		return nil, err
	}

	if cfg.length > 0 && cfg.length != c.Frames {
		if c.Frames == 0 {
			return nil, table.ErrEmptyInput
		}
		if buf.Data, err = audio.ResizeCycle(buf.Data, c.Channels, cfg.length); err != nil {
			return nil, fmt.Errorf("resizing cycle to %d frames: %w", cfg.length, err)
		}
	}

	tbl, err := table.FromBuffer(buf)
	if err != nil {
		return nil, fmt.Errorf("building table: %w", err)
	}

	return tbl, nil
}
