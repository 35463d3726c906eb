// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// ErrMockRead is returned by sources built with NewFailingSource.
var ErrMockRead = errors.New("mock read failure")

// MockSource generates interleaved frames from a function of frame and
// channel. It implements the audio.Source interface without importing it.
type MockSource struct {
	sampleRate int
	channels   int
	frames     int // total frames to generate
	generated  int // frames generated so far
	failAfter  int // fail once this many frames were generated, -1 never
	sample     func(frame, channel int) float32
}

// NewMockSource creates a source of frames frames produced by sample.
func NewMockSource(sampleRate, channels, frames int, sample func(frame, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		frames:     frames,
		failAfter:  -1,
		sample:     sample,
	}
}

// NewSilentSource creates a source of zeros.
func NewSilentSource(sampleRate, channels, frames int) *MockSource {
	return NewConstantSource(sampleRate, channels, frames, 0)
}

// NewConstantSource creates a source where every sample equals value.
func NewConstantSource(sampleRate, channels, frames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, frames, func(int, int) float32 {
		return value
	})
}

// NewSequenceSource plays back fixed interleaved samples once.
func NewSequenceSource(sampleRate, channels int, samples []float32) *MockSource {
	return NewMockSource(sampleRate, channels, len(samples)/channels, func(frame, channel int) float32 {
		return samples[frame*channels+channel]
	})
}

// NewFailingSource yields good frames until failAfter frames were produced
// and then returns ErrMockRead.
func NewFailingSource(sampleRate, channels, frames, failAfter int) *MockSource {
	m := NewConstantSource(sampleRate, channels, frames, 0.25)
	m.failAfter = failAfter

	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source to its first frame.
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.failAfter >= 0 && m.generated >= m.failAfter {
		return 0, ErrMockRead
	}
	if m.generated >= m.frames {
		return 0, io.EOF
	}

	limit := m.frames
	if m.failAfter >= 0 {
		limit = min(limit, m.failAfter)
	}
	count := min(len(dst)/m.channels, limit-m.generated)

	for f := range count {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.sample(m.generated+f, ch)
		}
	}
	m.generated += count

	if m.generated >= m.frames {
		return count * m.channels, io.EOF
	}

	return count * m.channels, nil
}
