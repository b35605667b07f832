// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM WAV audio for the import and export
// flows of impulse.
//
// # Decoding
//
// Decoder parses the canonical 44-byte RIFF/WAVE header and streams 16-bit
// PCM samples as normalized float32 values:
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//
// Mono and stereo at any sample rate are supported; only format 1 (PCM) at
// 16 bits per sample is accepted. The sentinel errors (ErrNotWavFile,
// ErrOnlyPCM16bitSupported, ErrUnsupportedWavLayout, ErrUnsupportedWavChunks)
// identify the rejection reason.
//
// # Encoding
//
// Write16 writes a track's samples as a mono 16-bit PCM WAV file using the
// github.com/go-audio/wav encoder:
//
//	f, _ := os.Create("track.wav")
//	err := wav.Write16(f, 44100, samples)
//
// The writer needs an io.WriteSeeker because the RIFF sizes are patched
// after the data chunk is written.
package wav
