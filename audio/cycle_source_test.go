// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCycleSource_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cycle    []float64
		rate     int
		channels int
		wantErr  error
	}{
		{name: "empty cycle", cycle: nil, rate: 48000, channels: 1, wantErr: ErrInvalidSampleCount},
		{name: "zero rate", cycle: []float64{0}, rate: 0, channels: 1, wantErr: ErrInvalidSampleRate},
		{name: "zero channels", cycle: []float64{0}, rate: 48000, channels: 0, wantErr: ErrInvalidChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewCycleSource(tt.cycle, tt.rate, tt.channels)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCycleSource_Mono(t *testing.T) {
	t.Parallel()

	src, err := NewCycleSource([]float64{0, -0.5, -1, 0.5}, 48000, 1)
	require.NoError(t, err)
	assert.Equal(t, 48000, src.SampleRate())
	assert.Equal(t, 1, src.Channels())
	assert.Equal(t, 4, src.Frames())

	dst := make([]float32, 8)
	n, err := src.ReadSamples(dst)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 4, n)
	assert.Equal(t, []float32{0, -0.5, -1, 0.5}, dst[:n])

	n, err = src.ReadSamples(dst)
	assert.ErrorIs(t, err, io.EOF)
	assert.Zero(t, n)
	assert.NoError(t, src.Close())
}

func TestCycleSource_StereoChunks(t *testing.T) {
	t.Parallel()

	src, err := NewCycleSource([]float64{0.25, 0.5, 0.75}, 8000, 2)
	require.NoError(t, err)

	dst := make([]float32, 4)
	n, err := src.ReadSamples(dst)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, 0.25, 0.5, 0.5}, dst[:n])

	n, err = src.ReadSamples(dst)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, []float32{0.75, 0.75}, dst[:n])
}

func TestCycleSource_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src, err := NewCycleSource([]float64{0, 1}, 8000, 2)
	require.NoError(t, err)

	_, err = src.ReadSamples(make([]float32, 3))
	assert.ErrorIs(t, err, ErrInvalidDstSize)
}
