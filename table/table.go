// SPDX-License-Identifier: EPL-2.0

package table

import (
	"strconv"
	"strings"

	goaudio "github.com/go-audio/audio"
)

// Table is a normalized, quantized wavetable. Values holds Frames frames of
// Channels samples each, frame-major: channel 0 and 1 of frame 0, then
// frame 1, and so on.
type Table struct {
	Channels int
	Frames   int
	Values   []int16
}

// New normalizes interleaved samples and quantizes them into a Table.
func New(data []float64, channels int) (*Table, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(data)%channels != 0 {
		return nil, ErrRaggedInput
	}

	normalized, err := Normalize(data)
	if err != nil {
		return nil, err
	}

	values, err := Quantize(normalized)
	if err != nil {
		return nil, err
	}

	return &Table{
		Channels: channels,
		Frames:   len(data) / channels,
		Values:   values,
	}, nil
}

// FromBuffer builds a Table from a decoded sample buffer.
func FromBuffer(buf *goaudio.FloatBuffer) (*Table, error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrEmptyInput
	}

	return New(buf.Data, buf.Format.NumChannels)
}

// Len is the total number of entries across all channels.
func (t *Table) Len() int { return len(t.Values) }

// Frame returns the samples of frame i, one per channel.
func (t *Table) Frame(i int) []int16 {
	return t.Values[i*t.Channels : (i+1)*t.Channels]
}

// Channel returns a copy of a single channel's samples.
func (t *Table) Channel(c int) []int16 {
	out := make([]int16, t.Frames)
	for f := range t.Frames {
		out[f] = t.Values[f*t.Channels+c]
	}

	return out
}

// String joins the values with ", ".
func (t *Table) String() string {
	var sb strings.Builder
	sb.Grow(len(t.Values) * 7)
	appendList(&sb, t.Values, ", ")

	return sb.String()
}

func appendList(sb *strings.Builder, values []int16, sep string) {
	var num [8]byte
	for i, v := range values {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.Write(strconv.AppendInt(num[:0], int64(v), 10))
	}
}
