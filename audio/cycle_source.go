// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// CycleSource streams a single waveform cycle once, copying every sample to
// all channels of its frame.
type CycleSource struct {
	cycle      []float64
	sampleRate int
	channels   int
	pos        int // frames emitted so far
}

func NewCycleSource(cycle []float64, sampleRate, channels int) (*CycleSource, error) {
	if len(cycle) == 0 {
		return nil, ErrInvalidSampleCount
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}

	return &CycleSource{
		cycle:      cycle,
		sampleRate: sampleRate,
		channels:   channels,
	}, nil
}

func (s *CycleSource) SampleRate() int { return s.sampleRate }
func (s *CycleSource) Channels() int   { return s.channels }
func (s *CycleSource) BufSize() int    { return 4096 }
func (s *CycleSource) Close() error    { return nil }

// Frames is the length of the cycle in frames.
func (s *CycleSource) Frames() int { return len(s.cycle) }

func (s *CycleSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%s.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if s.pos >= len(s.cycle) {
		return 0, io.EOF
	}

	frames := min(len(dst)/s.channels, len(s.cycle)-s.pos)
	for f := range frames {
		v := float32(s.cycle[s.pos+f])
		base := f * s.channels
		for c := range s.channels {
			dst[base+c] = v
		}
	}
	s.pos += frames

	n := frames * s.channels
	if s.pos >= len(s.cycle) {
		return n, io.EOF
	}

	return n, nil
}
