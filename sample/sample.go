// SPDX-License-Identifier: EPL-2.0

package sample

import "math"

// Sample constrains the numeric representations a track may carry.
// Integer widths hold raw PCM, floating point holds normalized amplitudes.
type Sample interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

// Zero returns the canonical silence value for T.
func Zero[T Sample]() T {
	var z T
	return z
}

// Normalize converts v into the analysis range [-1.0, 1.0]. Integer input is
// scaled against the negative maximum of its width, so math.MinInt16 maps to
// exactly -1.0. Floating-point input passes through unscaled.
func Normalize[T Sample](v T) float64 {
	switch v := any(v).(type) {
	case int8:
		return float64(v) / 128.0
	case int16:
		return float64(v) / 32768.0
	case int32:
		return float64(v) / 2147483648.0
	case int64:
		return float64(v) / 9223372036854775808.0
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return 0
}

// NormalizeSlice appends the normalized form of every sample in src to dst
// and returns the extended slice. Passing a reused dst avoids reallocating
// on hot paths.
func NormalizeSlice[T Sample](src []T, dst []float64) []float64 {
	for _, v := range src {
		dst = append(dst, Normalize(v))
	}
	return dst
}

// FromFloat converts a normalized value into T, clamping f to [-1.0, 1.0]
// first. Integer output scales by the positive maximum of the width to avoid
// overflow on full-scale input.
func FromFloat[T Sample](f float64) T {
	if f > 1 {
		f = 1
	} else if f < -1 {
		f = -1
	}

	var out T
	switch p := any(&out).(type) {
	case *int8:
		*p = int8(f * 127)
	case *int16:
		*p = int16(f * 32767)
	case *int32:
		*p = int32(f * 2147483647)
	case *int64:
		// math.MaxInt64 is not exactly representable in float64; the
		// product rounds to 2^63 at full scale and would overflow the
		// conversion, so the boundaries are handled directly.
		switch {
		case f >= 1:
			*p = math.MaxInt64
		case f <= -1:
			*p = -math.MaxInt64
		default:
			*p = int64(f * 9223372036854775807)
		}
	case *float32:
		*p = float32(f)
	case *float64:
		*p = f
	}
	return out
}
