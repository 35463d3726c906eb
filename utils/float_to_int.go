// SPDX-License-Identifier: EPL-2.0

package utils

const (
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
)

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM. Values outside
// the range are clamped first.
func Float32ToInt16(x float32) int16 {
	return int16(clampUnit(x) * maxInt16)
}

// Float32ToInt24 converts a sample in [-1, 1] to a 24-bit PCM value carried
// in an int32.
func Float32ToInt24(x float32) int32 {
	return int32(float64(clampUnit(x)) * maxInt24)
}

func clampUnit(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}

	return x
}
