// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile             = errors.New("not a WAV file")
	ErrMissingFormat          = errors.New("WAV file has no usable fmt chunk")
	ErrPCMChunkNotFound       = errors.New("WAV file has no data chunk")
	ErrTruncatedData          = errors.New("WAV data chunk is shorter than declared")
	ErrMisalignedData         = errors.New("WAV data size is not a whole number of frames")
	ErrUnsupportedFormat      = errors.New("unsupported WAV format tag")
	ErrUnsupportedSampleWidth = errors.New("unsupported sample width")
	ErrInvalidLayout          = errors.New("channel count, sample width and sample rate must be positive")
	ErrEmptySource            = errors.New("source produced no frames")
)
