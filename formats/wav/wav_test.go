// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wavetable/audio"
	"github.com/ik5/wavetable/internal/audiotest"
)

// rawWAV assembles a WAV file by hand. A nil fmtChunk omits the fmt chunk
// and a nil data omits the data chunk. declared overrides the data size
// field when non-negative.
func rawWAV(fmtChunk, data []byte, declared int64) []byte {
	var body bytes.Buffer
	body.WriteString("WAVE")
	if fmtChunk != nil {
		body.WriteString("fmt ")
		binary.Write(&body, binary.LittleEndian, uint32(len(fmtChunk)))
		body.Write(fmtChunk)
	}
	if data != nil {
		size := int64(len(data))
		if declared >= 0 {
			size = declared
		}
		body.WriteString("data")
		binary.Write(&body, binary.LittleEndian, uint32(size))
		body.Write(data)
	}

	var out bytes.Buffer
	out.WriteString("RIFF")
	binary.Write(&out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

func fmtChunk(format, channels uint16, rate uint32, bits uint16) []byte {
	var b bytes.Buffer
	align := channels * ((bits + 7) / 8)
	binary.Write(&b, binary.LittleEndian, format)
	binary.Write(&b, binary.LittleEndian, channels)
	binary.Write(&b, binary.LittleEndian, rate)
	binary.Write(&b, binary.LittleEndian, rate*uint32(align))
	binary.Write(&b, binary.LittleEndian, align)
	binary.Write(&b, binary.LittleEndian, bits)

	return b.Bytes()
}

func encode(t *testing.T, src audio.Source, width int) []byte {
	t.Helper()

	ws := &audiotest.WriteSeeker{}
	_, err := Encode(ws, src, width)
	require.NoError(t, err)

	return ws.Bytes()
}

func TestEncode_Float32RoundTrip(t *testing.T) {
	t.Parallel()

	cycle, err := audio.Triangle(8)
	require.NoError(t, err)
	src, err := audio.NewCycleSource(cycle, 48000, 1)
	require.NoError(t, err)

	ws := &audiotest.WriteSeeker{}
	frames, err := Encode(ws, src, 4)
	require.NoError(t, err)
	assert.Equal(t, 8, frames)

	c, err := Decode(bytes.NewReader(ws.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Channels)
	assert.Equal(t, 4, c.SampleWidth)
	assert.Equal(t, 48000, c.SampleRate)
	assert.Equal(t, 8, c.Frames)
	assert.Equal(t, FormatIEEEFloat, c.Format)

	buf, err := c.Samples()
	require.NoError(t, err)
	assert.Equal(t, cycle, buf.Data)
}

func TestEncode_Stereo16BitFrameMajor(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSequenceSource(8000, 2, []float32{0.5, -0.5, 1, -1, 0, 0.25})
	c, err := Decode(bytes.NewReader(encode(t, src, 2)))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Channels)
	assert.Equal(t, 3, c.Frames)
	assert.Equal(t, FormatPCM, c.Format)

	buf, err := c.Samples()
	require.NoError(t, err)
	assert.Equal(t, []float64{16383, -16383, 32767, -32767, 0, 8191}, buf.Data)
}

func TestEncode_24Bit(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSequenceSource(44100, 1, []float32{0.5, -1, 0})
	c, err := Decode(bytes.NewReader(encode(t, src, 3)))
	require.NoError(t, err)
	assert.Equal(t, 3, c.SampleWidth)
	assert.Equal(t, 3, c.Frames)

	buf, err := c.Samples()
	require.NoError(t, err)
	assert.Equal(t, []float64{4194303, -8388607, 0}, buf.Data)
}

func TestEncode_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported width", func(t *testing.T) {
		t.Parallel()
		_, err := Encode(&audiotest.WriteSeeker{}, audiotest.NewSilentSource(8000, 1, 4), 1)
		assert.ErrorIs(t, err, ErrUnsupportedSampleWidth)
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()
		_, err := Encode(&audiotest.WriteSeeker{}, audiotest.NewSilentSource(8000, 1, 0), 2)
		assert.ErrorIs(t, err, ErrEmptySource)
	})

	t.Run("invalid layout", func(t *testing.T) {
		t.Parallel()
		_, err := Encode(&audiotest.WriteSeeker{}, audiotest.NewSilentSource(0, 1, 4), 2)
		assert.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("source failure", func(t *testing.T) {
		t.Parallel()
		_, err := Encode(&audiotest.WriteSeeker{}, audiotest.NewFailingSource(8000, 1, 10000, 5000), 2)
		assert.ErrorIs(t, err, audiotest.ErrMockRead)
	})
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	pcm16 := fmtChunk(1, 1, 8000, 16)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"not a wav", []byte("NOT A WAV FILE DATA"), ErrNotWavFile},
		{"too short", []byte("RIFF"), ErrNotWavFile},
		{"riff but not wave", append([]byte("RIFF\x04\x00\x00\x00AVI "), make([]byte, 8)...), ErrNotWavFile},
		{"no fmt chunk", rawWAV(nil, []byte{0, 0}, -1), ErrMissingFormat},
		{"no data chunk", rawWAV(pcm16, nil, -1), ErrPCMChunkNotFound},
		{"truncated", rawWAV(pcm16, []byte{1, 0, 2, 0}, 8), ErrTruncatedData},
		{"misaligned", rawWAV(pcm16, []byte{1, 0, 2, 0}, 3), ErrMisalignedData},
		{"declared size beyond the stream", rawWAV(fmtChunk(3, 1, 48000, 32), make([]byte, 8), 0xFFFFFFFC), ErrTruncatedData},
		{"compressed", rawWAV(fmtChunk(2, 1, 8000, 4), []byte{0, 0}, -1), ErrUnsupportedFormat},
		{"8-byte float", rawWAV(fmtChunk(3, 1, 8000, 64), make([]byte, 8), -1), ErrUnsupportedSampleWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// extensibleFmt builds a WAVE_FORMAT_EXTENSIBLE fmt chunk whose SubFormat
// GUID carries sub as its format tag.
func extensibleFmt(sub, channels uint16, rate uint32, bits uint16) []byte {
	var b bytes.Buffer
	b.Write(fmtChunk(uint16(FormatExtensible), channels, rate, bits))
	binary.Write(&b, binary.LittleEndian, uint16(22)) // cbSize
	binary.Write(&b, binary.LittleEndian, bits)       // valid bits
	binary.Write(&b, binary.LittleEndian, uint32(4))  // channel mask
	binary.Write(&b, binary.LittleEndian, sub)
	b.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71})

	return b.Bytes()
}

func TestDecode_Extensible(t *testing.T) {
	t.Parallel()

	half := []byte{0x00, 0x00, 0x00, 0x3f} // float32 0.5, int32 1056964608

	tests := []struct {
		name       string
		sub        uint16
		wantFormat Format
		want       []float64
	}{
		{"float sub-format", 3, FormatIEEEFloat, []float64{0.5}},
		{"pcm sub-format", 1, FormatPCM, []float64{1056964608}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Decode(bytes.NewReader(rawWAV(extensibleFmt(tt.sub, 1, 48000, 32), half, -1)))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, c.Format)
			assert.Equal(t, 1, c.Frames)

			buf, err := c.Samples()
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.Data)
		})
	}
}

func TestDecode_ExtensibleErrors(t *testing.T) {
	t.Parallel()

	_, err := Decode(bytes.NewReader(rawWAV(extensibleFmt(2, 1, 48000, 32), make([]byte, 4), -1)))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	short := fmtChunk(uint16(FormatExtensible), 1, 48000, 32)
	_, err = Decode(bytes.NewReader(rawWAV(short, make([]byte, 4), -1)))
	assert.ErrorIs(t, err, ErrMissingFormat)
}

func TestDecode_TruncatedEncodedFile(t *testing.T) {
	t.Parallel()

	cycle, err := audio.Triangle(8)
	require.NoError(t, err)
	src, err := audio.NewCycleSource(cycle, 48000, 1)
	require.NoError(t, err)

	data := encode(t, src, 4)
	_, err = Decode(bytes.NewReader(data[:len(data)-4]))
	assert.ErrorIs(t, err, ErrTruncatedData)
}

func TestDecode_OddPayloadSkipsPadByte(t *testing.T) {
	t.Parallel()

	// three 8-bit frames followed by the RIFF pad byte
	data := rawWAV(fmtChunk(1, 1, 8000, 8), []byte{128, 255, 0, 0}, 3)

	c, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Frames)

	buf, err := c.Samples()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 127, -128}, buf.Data)
}

func TestDecode_EmptyData(t *testing.T) {
	t.Parallel()

	c, err := Decode(bytes.NewReader(rawWAV(fmtChunk(1, 2, 8000, 16), []byte{}, -1)))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Frames)
	assert.Empty(t, c.Data)
}

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cycle.wav")
	src := audiotest.NewSequenceSource(22050, 1, []float32{0, 0.5, -0.5})

	frames, err := EncodeFile(path, src, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, frames)

	c, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, 22050, c.SampleRate)
	assert.Equal(t, 3, c.Frames)
}

func TestDecodeFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := DecodeFile(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	for width, want := range map[int]Format{2: FormatPCM, 3: FormatPCM, 4: FormatIEEEFloat} {
		got, err := FormatFor(width)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := FormatFor(8)
	assert.ErrorIs(t, err, ErrUnsupportedSampleWidth)
}

func BenchmarkDecode(b *testing.B) {
	cycle, err := audio.Triangle(2048)
	require.NoError(b, err)
	src, err := audio.NewCycleSource(cycle, 48000, 1)
	require.NoError(b, err)

	ws := &audiotest.WriteSeeker{}
	_, err = Encode(ws, src, 4)
	require.NoError(b, err)
	data := ws.Bytes()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Decode(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
