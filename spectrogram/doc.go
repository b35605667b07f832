// SPDX-License-Identifier: EPL-2.0

// Package spectrogram computes time-frequency representations of track
// buffers.
//
// An Engine turns a slice of samples into a matrix of spectral magnitudes
// using a short-time Fourier transform: the input is cut into Hann-windowed
// frames of a fixed size, each frame goes through an FFT
// (github.com/mjibson/go-dsp/fft), and the magnitudes of the positive
// frequency bins become one row of the representation.
//
// # Ownership
//
// The engine owns only its computed matrix. The sample slice passed to Load
// is borrowed from the track's accumulated buffer and is never retained past
// the call; leftover samples that do not yet fill a whole window are copied
// into an internal tail. The engine therefore never aliases the buffer the
// track side keeps appending to.
//
// # Full and Incremental Loading
//
// Load's behavior follows the selection policy that produced the slice:
//
//   - track.All: full recompute. The previous matrix is discarded and the
//     whole slice is framed from the start. An input shorter than one window
//     is zero-padded into a single frame so short tracks still render.
//   - track.NewOnly: append. The new samples join the internal tail and only
//     completed windows are transformed, so a refresh costs time proportional
//     to the new data, never to the full history.
//
// Loading an empty slice is a no-op. Load must not be called concurrently
// on the same engine; the refresh driver is single-threaded.
package spectrogram
