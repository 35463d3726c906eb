// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
	gowav "github.com/go-audio/wav"
)

// Decode reads a WAV container. The fmt chunk is parsed by go-audio/wav; the
// data chunk is read byte-exact and must hold a whole number of frames.
func Decode(r io.ReadSeeker) (*Container, error) {
	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if [4]byte(hdr[0:4]) != riff.RiffID || [4]byte(hdr[8:12]) != riff.WavFormatID {
		return nil, ErrNotWavFile
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding WAV file: %w", err)
	}

	dec := gowav.NewDecoder(r)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("reading WAV header: %w", err)
	}
	if dec.NumChans == 0 || dec.BitDepth == 0 || dec.SampleRate == 0 {
		return nil, ErrMissingFormat
	}

	format := Format(dec.WavAudioFormat)
	if format == FormatExtensible {
		sub, err := extensibleSubFormat(r)
		if err != nil {
			return nil, err
		}
		format = sub
	}
	width := (int(dec.BitDepth) + 7) / 8
	if err := checkFormat(format, width); err != nil {
		return nil, err
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPCMChunkNotFound, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrPCMChunkNotFound
	}

	size, avail, err := dataSize(r)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Channels:    int(dec.NumChans),
		SampleWidth: width,
		SampleRate:  int(dec.SampleRate),
		Format:      format,
	}
	if size%int64(c.BlockAlign()) != 0 {
		return nil, fmt.Errorf("%w: %d bytes with %d-byte frames", ErrMisalignedData, size, c.BlockAlign())
	}
	if size > avail {
		return nil, fmt.Errorf("%w: want %d bytes, %d left", ErrTruncatedData, size, avail)
	}

	c.Data = make([]byte, int(size))
	if _, err := io.ReadFull(r, c.Data); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: want %d bytes", ErrTruncatedData, size)
		}
		return nil, fmt.Errorf("reading WAV data: %w", err)
	}
	c.Frames = len(c.Data) / c.BlockAlign()

	return c, nil
}

// DecodeFile opens path and decodes it. The file is closed before returning.
func DecodeFile(path string) (c *Container, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("closing %s: %w", path, cerr))
		}
	}()

	c, err = Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return c, nil
}

// dataSize re-reads the size field of the data chunk header that r has just
// moved past, and reports how many bytes the stream holds after it. go-audio
// rounds odd sizes up to the RIFF word boundary, which would count the pad
// byte as a sample. r is left at the start of the payload.
func dataSize(r io.ReadSeeker) (size, avail int64, err error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, 0, fmt.Errorf("locating WAV data: %w", err)
	}
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("locating WAV data: %w", err)
	}
	if _, err := r.Seek(pos-4, io.SeekStart); err != nil {
		return 0, 0, fmt.Errorf("locating WAV data: %w", err)
	}

	var declared uint32
	if err := binary.Read(r, binary.LittleEndian, &declared); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrTruncatedData, err)
	}

	return int64(declared), end - pos, nil
}

// extensibleSubFormat finds the fmt chunk of a WAVE_FORMAT_EXTENSIBLE file
// and returns the format tag held in the first two bytes of its SubFormat
// GUID. go-audio skips the extension, so the chunk is read again here. The
// read position of r is restored.
func extensibleSubFormat(r io.ReadSeeker) (f Format, err error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("locating fmt chunk: %w", err)
	}
	defer func() {
		if _, serr := r.Seek(pos, io.SeekStart); serr != nil && err == nil {
			err = fmt.Errorf("restoring read position: %w", serr)
		}
	}()

	if _, err := r.Seek(12, io.SeekStart); err != nil {
		return 0, fmt.Errorf("locating fmt chunk: %w", err)
	}

	for {
		var (
			id   [4]byte
			size uint32
		)
		if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMissingFormat, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMissingFormat, err)
		}

		if id != riff.FmtID {
			if _, err := r.Seek(int64(size)+int64(size&1), io.SeekCurrent); err != nil {
				return 0, fmt.Errorf("skipping %q chunk: %w", id[:], err)
			}
			continue
		}

		// 16 base bytes, cbSize, valid bits, channel mask, SubFormat GUID
		if size < 40 {
			return 0, fmt.Errorf("%w: extensible fmt chunk of %d bytes", ErrMissingFormat, size)
		}
		var ext [40]byte
		if _, err := io.ReadFull(r, ext[:]); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMissingFormat, err)
		}

		sub := Format(binary.LittleEndian.Uint16(ext[24:26]))
		if sub != FormatPCM && sub != FormatIEEEFloat {
			return 0, fmt.Errorf("%w: extensible sub-format %s", ErrUnsupportedFormat, sub)
		}

		return sub, nil
	}
}

func checkFormat(f Format, width int) error {
	switch f {
	case FormatPCM:
		if width < 1 || width > 4 {
			return fmt.Errorf("%w: %d-byte PCM", ErrUnsupportedSampleWidth, width)
		}
	case FormatIEEEFloat:
		if width != 4 {
			return fmt.Errorf("%w: %d-byte float", ErrUnsupportedSampleWidth, width)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	return nil
}
