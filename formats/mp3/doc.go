// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-3 audio for the impulse import flow.
//
// Decoding is backed by github.com/hajimehoshi/go-mp3, which outputs 16-bit
// little-endian stereo PCM; the decoder converts that into the normalized
// float32 stream the audio.Source interface carries:
//
//	decoder := mp3.Decoder{}
//	src, err := decoder.Decode(file)
//
// The output is always two channels at the sample rate encoded in the
// stream.
package mp3
