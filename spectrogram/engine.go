// SPDX-License-Identifier: EPL-2.0

package spectrogram

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/ik5/impulse/sample"
	"github.com/ik5/impulse/track"
)

// Default STFT geometry. 1024/256 gives 75% overlap, the usual trade-off
// between time and frequency resolution for music material.
const (
	DefaultWindowSize = 1024
	DefaultHopSize    = 256
)

// Engine computes and owns the time-frequency matrix for one track. It is
// bound to the track's sender handle for identification only; it never
// touches the track's buffer except through the slice handed to Load.
type Engine[T sample.Sample] struct {
	sender track.Sender[T]

	winSize int
	hop     int
	window  []float64 // Hann coefficients, len == winSize

	// Normalized samples carried between incremental loads that do not yet
	// fill a whole window.
	tail []float64

	// frames[t][f] is the magnitude of frequency bin f at frame t.
	frames [][]float64
}

// New returns an engine bound to sender with the default STFT geometry.
func New[T sample.Sample](sender track.Sender[T]) *Engine[T] {
	return NewSized(sender, DefaultWindowSize, DefaultHopSize)
}

// NewSized returns an engine with an explicit window size and hop. Values
// out of range fall back to sane ones: a non-positive size becomes
// DefaultWindowSize, a hop outside (0, size] becomes the window size.
func NewSized[T sample.Sample](sender track.Sender[T], winSize, hop int) *Engine[T] {
	if winSize < 1 {
		winSize = DefaultWindowSize
	}
	if hop < 1 || hop > winSize {
		hop = winSize
	}

	return &Engine[T]{
		sender:  sender,
		winSize: winSize,
		hop:     hop,
		window:  hannWindow(winSize),
	}
}

// Sender returns the producer handle of the track this engine visualizes.
func (e *Engine[T]) Sender() track.Sender[T] { return e.sender }

// WindowSize returns the STFT window size in samples.
func (e *Engine[T]) WindowSize() int { return e.winSize }

// HopSize returns the STFT hop in samples.
func (e *Engine[T]) HopSize() int { return e.hop }

// Bins returns the number of frequency bins per frame.
func (e *Engine[T]) Bins() int { return e.winSize/2 + 1 }

// Frames returns the number of time frames computed so far.
func (e *Engine[T]) Frames() int { return len(e.frames) }

// Load consumes a selected sample slice and updates the matrix. The slice is
// borrowed for the duration of the call only. With track.All the matrix is
// recomputed from scratch over the slice; with any other policy the samples
// are appended and only newly completed windows are transformed. An empty
// slice leaves the matrix untouched.
func (e *Engine[T]) Load(samples []T, policy track.Policy) {
	if len(samples) == 0 {
		return
	}

	if policy == track.All {
		e.frames = e.frames[:0]
		e.tail = e.tail[:0]
	}
	e.tail = sample.NormalizeSlice(samples, e.tail)

	for len(e.tail) >= e.winSize {
		e.frames = append(e.frames, e.transform(e.tail[:e.winSize]))
		e.tail = append(e.tail[:0], e.tail[e.hop:]...)
	}

	// A full recompute over less than one window still produces a frame:
	// the track is simply shorter than the window, not invisible.
	if policy == track.All && len(e.frames) == 0 && len(e.tail) > 0 {
		padded := make([]float64, e.winSize)
		copy(padded, e.tail)
		e.frames = append(e.frames, e.transform(padded))
		e.tail = e.tail[:0]
	}
}

// Representation returns the computed matrix, one row per time frame in
// chronological order. The matrix is borrowed: it reflects the most recent
// Load and must not be mutated or held across the next one.
func (e *Engine[T]) Representation() [][]float64 {
	return e.frames
}

// transform windows one frame and returns the magnitudes of its positive
// frequency bins.
func (e *Engine[T]) transform(frame []float64) []float64 {
	buf := make([]float64, e.winSize)
	for i, v := range frame {
		buf[i] = v * e.window[i]
	}

	spectrum := fft.FFTReal(buf)

	mags := make([]float64, e.winSize/2+1)
	for i := range mags {
		mags[i] = cmplx.Abs(spectrum[i])
	}
	return mags
}

// hannWindow returns periodic Hann coefficients for size samples.
func hannWindow(size int) []float64 {
	win := make([]float64, size)
	for i := range win {
		win[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(size))
	}
	return win
}
