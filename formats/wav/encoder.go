// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavetable/audio"
	"github.com/ik5/wavetable/utils"
)

// FormatFor reports the format tag used to store samples of the given width:
// 4-byte samples are IEEE float, 2- and 3-byte samples are integer PCM.
func FormatFor(sampleWidth int) (Format, error) {
	switch sampleWidth {
	case 2, 3:
		return FormatPCM, nil
	case 4:
		return FormatIEEEFloat, nil
	default:
		return 0, fmt.Errorf("%w: %d bytes", ErrUnsupportedSampleWidth, sampleWidth)
	}
}

// Encode drains src into w as a WAV file with the given sample width, taking
// the channel count and sample rate from src. Frames are written in the order
// src produces them. It returns the number of frames written.
//
// The source is not closed.
func Encode(w io.WriteSeeker, src audio.Source, sampleWidth int) (int, error) {
	format, err := FormatFor(sampleWidth)
	if err != nil {
		return 0, err
	}

	channels, rate := src.Channels(), src.SampleRate()
	if channels <= 0 || rate <= 0 {
		return 0, ErrInvalidLayout
	}

	size := max(src.BufSize()/channels, 1) * channels
	buf := make([]float32, size)
	enc := gowav.NewEncoder(w, rate, sampleWidth*8, channels, int(format))

	var ints *goaudio.IntBuffer
	if format == FormatPCM {
		ints = &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
			Data:           make([]int, 0, size),
			SourceBitDepth: sampleWidth * 8,
		}
	}

	frames := 0
	for {
		n, rerr := src.ReadSamples(buf)
		n -= n % channels
		if n > 0 {
			if ints != nil {
				err = writeInts(enc, ints, buf[:n], sampleWidth)
			} else {
				err = writeFloats(enc, buf[:n], channels)
			}
			if err != nil {
				return frames, fmt.Errorf("writing WAV data: %w", err)
			}
			frames += n / channels
		}

		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			return frames, fmt.Errorf("reading source: %w", rerr)
		}
	}

	if frames == 0 {
		return 0, ErrEmptySource
	}
	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("finalizing WAV header: %w", err)
	}

	return frames, nil
}

// EncodeFile creates path and encodes src into it.
func EncodeFile(path string, src audio.Source, sampleWidth int) (frames int, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", path, cerr))
		}
	}()

	return Encode(f, src, sampleWidth)
}

func writeInts(enc *gowav.Encoder, ib *goaudio.IntBuffer, samples []float32, width int) error {
	ib.Data = ib.Data[:0]
	for _, s := range samples {
		if width == 3 {
			ib.Data = append(ib.Data, int(utils.Float32ToInt24(s)))
		} else {
			ib.Data = append(ib.Data, int(utils.Float32ToInt16(s)))
		}
	}

	return enc.Write(ib)
}

// writeFloats hands the encoder one frame per call; go-audio counts frames
// by calls to WriteFrame.
func writeFloats(enc *gowav.Encoder, samples []float32, channels int) error {
	for i := 0; i < len(samples); i += channels {
		if err := enc.WriteFrame(samples[i : i+channels]); err != nil {
			return err
		}
	}

	return nil
}
