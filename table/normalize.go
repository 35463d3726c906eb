// SPDX-License-Identifier: EPL-2.0

package table

import (
	"fmt"
	"math"
)

const (
	// FullScale is the table value a normalized amplitude of 1.0 maps to.
	FullScale = 16384
	// MinValue and MaxValue bound every table entry. The range is
	// deliberately asymmetric: +1.0 keeps its full-scale value while -1.0
	// gives up one step.
	MinValue = -16383
	MaxValue = 16384
)

// Peak returns the largest absolute sample value.
func Peak(data []float64) (float64, error) {
	var peak float64
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: index %d", ErrNonFiniteSample, i)
		}
		peak = max(peak, math.Abs(v))
	}

	return peak, nil
}

// Normalize divides every sample by the peak absolute value so the result
// spans at most [-1, 1] and touches one of the bounds. Input that is all
// zeros fails with ErrSilentInput. data is not modified.
func Normalize(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	peak, err := Peak(data)
	if err != nil {
		return nil, err
	}
	if peak == 0 {
		return nil, ErrSilentInput
	}

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v / peak
	}

	return out, nil
}

// Quantize maps normalized samples onto the fixed-point table range: each
// value is multiplied by FullScale, clipped to [MinValue, MaxValue] and
// rounded to the nearest integer, ties to even.
func Quantize(normalized []float64) ([]int16, error) {
	out := make([]int16, len(normalized))
	for i, v := range normalized {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: index %d", ErrNonFiniteSample, i)
		}
		out[i] = quantize(v)
	}

	return out, nil
}

func quantize(v float64) int16 {
	s := min(max(v*FullScale, MinValue), MaxValue)
	return int16(math.RoundToEven(s))
}
