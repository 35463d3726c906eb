// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes the WAV containers that hold a wavetable
// cycle.
//
// It is built on github.com/go-audio/wav. The go-audio decoder parses the
// RIFF header and the fmt chunk; the data chunk is then read byte-exact, so a
// file whose payload is shorter than declared, or not a whole number of
// frames, is rejected rather than silently padded.
//
// # Decoding
//
//	c, err := wav.DecodeFile("cycle.wav")
//	if err != nil {
//	    // errors.Is(err, wav.ErrNotWavFile), wav.ErrTruncatedData, ...
//	}
//	buf, err := c.Samples()
//
// Container keeps the header fields and the raw payload. Samples turns the
// payload into numbers using one lane type per sample width:
//
//	width 2          int16
//	width 4, float   float32 (format tag 3)
//	width 4, PCM     int32
//	width 3          int32, sign-extended
//	width 1          int32, unsigned minus 128
//
// Any other width fails with ErrUnsupportedSampleWidth.
//
// # Encoding
//
// Encode drains an audio.Source into a file. 4-byte samples are stored as
// IEEE float so they read back unchanged; 2- and 3-byte samples are stored as
// integer PCM.
//
//	src, _ := audio.NewCycleSource(audio.Triangle(2048), 48000, 1)
//	frames, err := wav.EncodeFile("cycle.wav", src, 4)
//
// # Errors
//
//   - ErrNotWavFile: missing RIFF/WAVE signature
//   - ErrMissingFormat: no usable fmt chunk
//   - ErrPCMChunkNotFound: no data chunk
//   - ErrTruncatedData: data chunk shorter than its declared size
//   - ErrMisalignedData: declared size is not a whole number of frames
//   - ErrUnsupportedFormat: compressed or unknown format tag
//   - ErrUnsupportedSampleWidth: width outside the lane table
//   - ErrEmptySource: nothing to encode
package wav
