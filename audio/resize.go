// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/wavetable/utils"

// ResizeCycle resamples one periodic cycle of interleaved samples to frames
// frames using cubic interpolation. Neighbours wrap around the cycle ends, so
// the result loops as cleanly as the input. Asking for the current length
// returns an unchanged copy.
func ResizeCycle(samples []float64, channels, frames int) ([]float64, error) {
	if channels <= 0 {
		return nil, ErrInvalidChannels
	}
	if frames <= 0 {
		return nil, ErrInvalidSampleCount
	}
	if len(samples)%channels != 0 {
		return nil, ErrInvalidDstSize
	}

	srcFrames := len(samples) / channels
	if srcFrames == 0 {
		return nil, ErrEmptyTable
	}

	at := func(frame, ch int) float64 {
		frame %= srcFrames
		if frame < 0 {
			frame += srcFrames
		}
		return samples[frame*channels+ch]
	}

	ratio := float64(srcFrames) / float64(frames)
	out := make([]float64, frames*channels)

	for j := range frames {
		pos := float64(j) * ratio
		i := int(pos)
		x := pos - float64(i)

		for ch := range channels {
			out[j*channels+ch] = utils.CubicInterpolate(
				at(i-1, ch), at(i, ch), at(i+1, ch), at(i+2, ch), x)
		}
	}

	return out, nil
}
