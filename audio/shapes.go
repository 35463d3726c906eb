// SPDX-License-Identifier: EPL-2.0

package audio

import "math"

const (
	ShapeTriangle = "triangle"
	ShapeSine     = "sine"
	ShapeSaw      = "saw"
)

// Triangle returns one cycle of a triangle wave with n samples.
//
// A ramp t = i/n over [0, 1) is folded into 2·|2·(t − 0.5)| − 1, which starts
// at the +1 peak, and then rolled left by n/4 samples so the cycle starts on
// the falling zero crossing. For n divisible by 4 the first sample is exactly
// zero and the table loops without a step.
func Triangle(n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidSampleCount
	}

	folded := make([]float64, n)
	for i := range n {
		t := float64(i) / float64(n)
		folded[i] = 2*math.Abs(2*(t-0.5)) - 1
	}

	return Roll(folded, n/4), nil
}

// Sine returns one cycle of sin(2πi/n).
func Sine(n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidSampleCount
	}

	out := make([]float64, n)
	for i := range n {
		out[i] = math.Sin(2 * math.Pi * float64(i) / float64(n))
	}

	return out, nil
}

// Saw returns one cycle of a rising sawtooth, rolled by n/2 so that it starts
// at zero instead of at the -1 trough.
func Saw(n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidSampleCount
	}

	ramp := make([]float64, n)
	for i := range n {
		ramp[i] = 2*float64(i)/float64(n) - 1
	}

	return Roll(ramp, n/2), nil
}

// Roll returns a copy of samples shifted left by k positions with
// wrap-around, so out[i] == samples[(i+k) mod n]. Negative k shifts right.
func Roll(samples []float64, k int) []float64 {
	n := len(samples)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	k = ((k % n) + n) % n
	copy(out, samples[k:])
	copy(out[n-k:], samples[:k])

	return out
}
