// SPDX-License-Identifier: EPL-2.0

// Package audio provides the ingest-side audio primitives of impulse.
//
// This package sits between a container decoder and a track's sender: it
// defines the Source interface decoders produce, a registry that maps file
// extensions to decoders, and the stream processors (Resampler, MonoMixer)
// the import pipeline chains in front of a track.
//
// # Source Interface
//
// The Source interface is the foundation of the ingest path:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders and stream processors implement it, so they chain
// freely. Samples are interleaved float32 values in [-1.0, 1.0]; 0.0 is
// silence. ReadSamples returns io.EOF when the stream ends.
//
// # Format Registry
//
// The Registry maps container extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ok := registry.Get("wav")
//
// The root impulse package pre-populates a registry with every built-in
// format for the import flow.
//
// # Stream Processing
//
// Resampler converts the sample rate using cubic interpolation, MonoMixer
// averages interleaved channels down to one:
//
//	res := audio.NewResampler(src, 44100)
//	mono := audio.NewMonoMixer(res)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// A spectrogram visualizes one signal per track, so the import pipeline
// always ends in a mono stream.
//
// # Error Handling
//
// ReadSamples follows the io convention: io.EOF marks a normal end of
// stream, anything else is a real failure. The package sentinels
// (ErrInvalidDstSize, ErrUnknownFormat) compare with errors.Is.
package audio
