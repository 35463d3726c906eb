// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize     = errors.New("dst size must be multiple of channels")
	ErrInvalidSampleCount = errors.New("sample count must be positive")
	ErrInvalidChannels    = errors.New("channel count must be positive")
	ErrInvalidSampleRate  = errors.New("sample rate must be positive")
	ErrInvalidFrequency   = errors.New("frequency must be between 0 and the Nyquist limit")
	ErrUnknownShape       = errors.New("unknown waveform shape")
	ErrEmptyTable         = errors.New("table holds no complete frame")
)
