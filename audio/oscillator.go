// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
)

// OscillatorConfig describes a table playback run.
type OscillatorConfig struct {
	// Table holds interleaved fixed-point frames of one cycle.
	Table    []int16
	Channels int
	// FullScale is the table value that maps to 1.0.
	FullScale  float64
	SampleRate int
	Frequency  float64
	// Frames is the number of output frames to produce.
	Frames int
}

// Oscillator plays a fixed-point wavetable with a 32-bit phase accumulator,
// the same way the synthesizer firmware steps through its lookup table: the
// phase wraps at 2^32 and its top bits select the table frame.
type Oscillator struct {
	table      []int16
	channels   int
	tableLen   uint64
	fullScale  float32
	sampleRate int

	phase uint32
	delta uint32

	remaining int
}

func NewOscillator(cfg OscillatorConfig) (*Oscillator, error) {
	if cfg.Channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(cfg.Table)%cfg.Channels != 0 {
		return nil, ErrInvalidDstSize
	}
	if len(cfg.Table) == 0 {
		return nil, ErrEmptyTable
	}
	if cfg.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if cfg.Frequency <= 0 || cfg.Frequency >= float64(cfg.SampleRate)/2 {
		return nil, ErrInvalidFrequency
	}
	if cfg.Frames < 0 {
		return nil, ErrInvalidSampleCount
	}

	fullScale := cfg.FullScale
	if fullScale <= 0 {
		fullScale = math.MaxInt16
	}

	return &Oscillator{
		table:      cfg.Table,
		channels:   cfg.Channels,
		tableLen:   uint64(len(cfg.Table) / cfg.Channels),
		fullScale:  float32(fullScale),
		sampleRate: cfg.SampleRate,
		delta:      uint32(cfg.Frequency * (1 << 32) / float64(cfg.SampleRate)),
		remaining:  cfg.Frames,
	}, nil
}

func (o *Oscillator) SampleRate() int { return o.sampleRate }
func (o *Oscillator) Channels() int   { return o.channels }
func (o *Oscillator) BufSize() int    { return 4096 }
func (o *Oscillator) Close() error    { return nil }

// ResetPhase restarts playback at the first table frame.
func (o *Oscillator) ResetPhase() { o.phase = 0 }

func (o *Oscillator) ReadSamples(dst []float32) (int, error) {
	if len(dst)%o.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if o.remaining <= 0 {
		return 0, io.EOF
	}

	frames := min(len(dst)/o.channels, o.remaining)
	for f := range frames {
		idx := int((uint64(o.phase) * o.tableLen) >> 32)
		src := o.table[idx*o.channels : (idx+1)*o.channels]
		for c, v := range src {
			dst[f*o.channels+c] = float32(v) / o.fullScale
		}
		o.phase += o.delta
	}
	o.remaining -= frames

	n := frames * o.channels
	if o.remaining <= 0 {
		return n, io.EOF
	}

	return n, nil
}
