// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio for the impulse import flow.
//
// Decoding is backed by github.com/go-audio/aiff. Only 16-bit PCM is
// accepted; samples come out as normalized float32 through the audio.Source
// interface:
//
//	decoder := aiff.Decoder{}
//	src, err := decoder.Decode(file)
//
// go-audio requires seekable input. A plain io.Reader is buffered fully in
// memory before decoding starts.
package aiff
