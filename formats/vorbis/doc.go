// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio for the impulse import flow.
//
// Decoding is backed by github.com/jfreymuth/oggvorbis, which already
// produces interleaved float32 samples, so the decoder only adapts frame
// accounting to the audio.Source contract:
//
//	decoder := vorbis.Decoder{}
//	src, err := decoder.Decode(file)
//
// Sample rate and channel count come from the stream headers.
package vorbis
