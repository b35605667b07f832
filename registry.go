// SPDX-License-Identifier: EPL-2.0

package impulse

import (
	"github.com/ik5/impulse/sample"
	"github.com/ik5/impulse/spectrogram"
	"github.com/ik5/impulse/track"
)

// Track pairs one channel with the engine that visualizes it. The cursor
// carries the NewOnly selection position between refreshes.
type Track[T sample.Sample] struct {
	channel *track.Channel[T]
	engine  *spectrogram.Engine[T]
	cursor  int
}

// Channel returns the track's sample channel.
func (t *Track[T]) Channel() *track.Channel[T] { return t.channel }

// Engine returns the track's spectrogram engine.
func (t *Track[T]) Engine() *spectrogram.Engine[T] { return t.engine }

// Registry owns the ordered collection of tracks. Display order equals
// insertion order. The registry is driven from a single thread of control,
// the display refresh loop; only producers feeding individual channels run
// concurrently with it.
type Registry[T sample.Sample] struct {
	policy  track.Policy
	winSize int
	hop     int
	tracks  []*Track[T]
}

// NewRegistry returns an empty registry using policy for every refresh and
// the default spectrogram geometry for new tracks.
func NewRegistry[T sample.Sample](policy track.Policy) *Registry[T] {
	return &Registry[T]{
		policy:  policy,
		winSize: spectrogram.DefaultWindowSize,
		hop:     spectrogram.DefaultHopSize,
	}
}

// SetWindow configures the STFT geometry for tracks added afterwards.
// Existing tracks keep the geometry they were created with.
func (r *Registry[T]) SetWindow(size, hop int) {
	r.winSize = size
	r.hop = hop
}

// SetPolicy switches the selection policy used by subsequent refreshes.
func (r *Registry[T]) SetPolicy(p track.Policy) { r.policy = p }

// Policy returns the active selection policy.
func (r *Registry[T]) Policy() track.Policy { return r.policy }

// Len reports how many tracks the registry holds.
func (r *Registry[T]) Len() int { return len(r.tracks) }

// Track returns the pair at index i.
func (r *Registry[T]) Track(i int) (*Track[T], error) {
	if i < 0 || i >= len(r.tracks) {
		return nil, ErrNoSuchTrack
	}
	return r.tracks[i], nil
}

// AddTrack creates a paired channel and engine, appends them at the end of
// the collection and returns the track's index together with a sender
// handle for the producer.
func (r *Registry[T]) AddTrack() (int, track.Sender[T]) {
	ch := track.New[T]()
	snd := ch.Sender()

	r.tracks = append(r.tracks, &Track[T]{
		channel: ch,
		engine:  spectrogram.NewSized(snd, r.winSize, r.hop),
	})
	return len(r.tracks) - 1, snd
}

// RemoveTrack closes the track's channel and removes channel and engine
// together. Outstanding sender handles start failing with
// track.ErrChannelClosed; other tracks are unaffected. Tracks after i shift
// down one position: indices are display order, not stable identifiers.
func (r *Registry[T]) RemoveTrack(i int) error {
	if i < 0 || i >= len(r.tracks) {
		return ErrNoSuchTrack
	}

	r.tracks[i].channel.Close()
	r.tracks = append(r.tracks[:i], r.tracks[i+1:]...)
	return nil
}

// RefreshAll runs one refresh cycle: for each track in display order it
// drains pending samples, selects from the accumulated buffer by the active
// policy and reloads the engine. The host calls this once per redraw, then
// reads each engine's representation.
func (r *Registry[T]) RefreshAll() {
	for _, t := range r.tracks {
		t.channel.Drain()

		view, cursor := track.Select(t.channel.Samples(), r.policy, t.cursor)
		t.cursor = cursor
		t.engine.Load(view, r.policy)
	}
}

// Representation returns the computed time-frequency matrix of track i. The
// matrix is borrowed from the engine and reflects the most recent
// RefreshAll.
func (r *Registry[T]) Representation(i int) ([][]float64, error) {
	t, err := r.Track(i)
	if err != nil {
		return nil, err
	}
	return t.engine.Representation(), nil
}
