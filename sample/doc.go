// SPDX-License-Identifier: EPL-2.0

// Package sample defines the numeric contract for audio samples.
//
// A sample is one amplitude reading at one instant on one track. Producers
// may emit samples in whatever representation their source uses (16-bit PCM
// from a WAV decoder, float32 from a live capture), so the rest of the
// module is generic over the Sample constraint rather than fixed to one
// numeric type.
//
// # The Sample Constraint
//
// Sample admits the signed integer and floating-point widths that audio
// pipelines actually carry:
//
//	type Sample interface {
//	    int8 | int16 | int32 | int64 | float32 | float64
//	}
//
// The contract is enforced entirely at compile time. A type outside the
// constraint fails instantiation; there is no runtime failure mode at this
// layer.
//
// # Normalization
//
// Analysis code works in the normalized range [-1.0, 1.0]:
//   - 0.0 is silence
//   - 1.0 is maximum positive amplitude
//   - -1.0 is maximum negative amplitude
//
// Normalize converts any Sample value into that range; FromFloat converts
// back, clamping out-of-range input. Integer conversions scale against the
// positive maximum of the width, so a full-scale value never overflows:
//
//	f := sample.Normalize(int16(16384)) // 0.5
//	v := sample.FromFloat[int16](0.5)   // 16383
//
// Zero returns the canonical silence value for a sample type, which for
// every admitted representation is the type's zero value.
package sample
