// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
)

// Format is the WAVE format tag of the fmt chunk.
type Format uint16

const (
	FormatPCM        Format = 1
	FormatIEEEFloat  Format = 3
	FormatExtensible Format = 0xFFFE
)

func (f Format) String() string {
	switch f {
	case FormatPCM:
		return "pcm"
	case FormatIEEEFloat:
		return "float"
	case FormatExtensible:
		return "extensible"
	default:
		return fmt.Sprintf("0x%04x", uint16(f))
	}
}

// Container is the persisted form of a wavetable cycle: the fmt chunk fields
// plus the raw, little-endian payload of the data chunk.
type Container struct {
	Channels    int
	SampleWidth int // bytes per sample
	SampleRate  int
	Frames      int
	Format      Format
	Data        []byte
}

// BlockAlign is the size of one frame in bytes.
func (c *Container) BlockAlign() int { return c.Channels * c.SampleWidth }

// Validate checks the layout fields and that Data holds exactly Frames
// frames with no padding.
func (c *Container) Validate() error {
	if c.Channels <= 0 || c.SampleWidth <= 0 || c.SampleRate <= 0 {
		return ErrInvalidLayout
	}
	if want := c.Frames * c.BlockAlign(); len(c.Data) != want {
		return fmt.Errorf("%w: %d bytes for %d frames of %d bytes",
			ErrMisalignedData, len(c.Data), c.Frames, c.BlockAlign())
	}

	return nil
}

// Samples decodes the payload into numeric samples. Two-byte samples are
// read as int16 lanes; every other width fills 32-bit lanes: 4-byte IEEE
// float data as float32, 4-byte PCM as int32, 3-byte PCM sign-extended and
// unsigned 8-bit PCM shifted to be centered on zero. Channels stay
// interleaved, so frame i occupies Data[i*channels : (i+1)*channels].
// The container itself is left untouched.
func (c *Container) Samples() (*goaudio.FloatBuffer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	n := c.Frames * c.Channels
	out := make([]float64, n)
	d := c.Data

	switch {
	case c.SampleWidth == 2:
		for i := range n {
			out[i] = float64(int16(binary.LittleEndian.Uint16(d[2*i:])))
		}
	case c.SampleWidth == 4 && c.Format == FormatIEEEFloat:
		for i := range n {
			out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(d[4*i:])))
		}
	case c.SampleWidth == 4:
		for i := range n {
			out[i] = float64(int32(binary.LittleEndian.Uint32(d[4*i:])))
		}
	case c.SampleWidth == 3:
		for i := range n {
			out[i] = float64(goaudio.Int24LETo32(d[3*i : 3*i+3]))
		}
	case c.SampleWidth == 1:
		for i := range n {
			out[i] = float64(int32(d[i]) - 128)
		}
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrUnsupportedSampleWidth, c.SampleWidth)
	}

	return &goaudio.FloatBuffer{
		Format: &goaudio.Format{NumChannels: c.Channels, SampleRate: c.SampleRate},
		Data:   out,
	}, nil
}
