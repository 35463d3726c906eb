// SPDX-License-Identifier: EPL-2.0

package table

import "errors"

var (
	// ErrSilentInput is returned when every sample is zero, leaving no peak
	// to normalize against.
	ErrSilentInput = errors.New("silent input: peak amplitude is zero")

	// ErrNonFiniteSample is returned for NaN or infinite samples.
	ErrNonFiniteSample = errors.New("sample is not a finite number")

	ErrEmptyInput      = errors.New("no samples to convert")
	ErrInvalidChannels = errors.New("channel count must be positive")
	ErrRaggedInput     = errors.New("sample count is not a multiple of the channel count")
	ErrInvalidName     = errors.New("not a valid C identifier")
)
