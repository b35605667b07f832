// SPDX-License-Identifier: EPL-2.0

package impulse

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/impulse/track"
)

func TestRegistry_AddTrack(t *testing.T) {
	t.Parallel()

	reg := NewRegistry[float32](track.All)

	idx, snd := reg.AddTrack()
	if idx != 0 {
		t.Errorf("AddTrack() index = %d, want 0", idx)
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}

	// The returned sender feeds the new track.
	if err := snd.Send(0.5); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	tr, err := reg.Track(idx)
	if err != nil {
		t.Fatalf("Track(%d) error = %v", idx, err)
	}
	if n := tr.Channel().Drain(); n != 1 {
		t.Errorf("Drain() = %d, want 1", n)
	}

	idx2, _ := reg.AddTrack()
	if idx2 != 1 {
		t.Errorf("second AddTrack() index = %d, want 1", idx2)
	}
}

func TestRegistry_RemoveTrack(t *testing.T) {
	t.Parallel()

	reg := NewRegistry[int16](track.All)

	_, snd0 := reg.AddTrack()
	_, snd1 := reg.AddTrack()
	_, snd2 := reg.AddTrack()

	if err := reg.RemoveTrack(1); err != nil {
		t.Fatalf("RemoveTrack(1) error = %v", err)
	}
	if reg.Len() != 2 {
		t.Errorf("Len() after removal = %d, want 2", reg.Len())
	}

	// The removed track's sender fails; neighbors keep working.
	if err := snd1.Send(1); !errors.Is(err, track.ErrChannelClosed) {
		t.Errorf("removed track Send() error = %v, want ErrChannelClosed", err)
	}
	if err := snd0.Send(2); err != nil {
		t.Errorf("track 0 Send() error = %v", err)
	}
	if err := snd2.Send(3); err != nil {
		t.Errorf("track 2 Send() error = %v", err)
	}
}

func TestRegistry_RemoveTrackOutOfRange(t *testing.T) {
	t.Parallel()

	reg := NewRegistry[int16](track.All)
	reg.AddTrack()

	if err := reg.RemoveTrack(-1); !errors.Is(err, ErrNoSuchTrack) {
		t.Errorf("RemoveTrack(-1) error = %v, want ErrNoSuchTrack", err)
	}
	if err := reg.RemoveTrack(1); !errors.Is(err, ErrNoSuchTrack) {
		t.Errorf("RemoveTrack(1) error = %v, want ErrNoSuchTrack", err)
	}
}

func TestRegistry_IndicesShiftOnRemoval(t *testing.T) {
	t.Parallel()

	// Indices are display positions: removing a track shifts later tracks
	// down, and a new track always lands at the end.
	reg := NewRegistry[int16](track.All)

	reg.AddTrack()
	_, sndB := reg.AddTrack()

	reg.RemoveTrack(0)

	// The former second track is now index 0.
	sndB.Send(7)
	tr, err := reg.Track(0)
	if err != nil {
		t.Fatalf("Track(0) error = %v", err)
	}
	if n := tr.Channel().Drain(); n != 1 {
		t.Errorf("Drain() on shifted track = %d, want 1", n)
	}

	idx, _ := reg.AddTrack()
	if idx != 1 {
		t.Errorf("AddTrack() after removal index = %d, want 1 (append, not slot reuse)", idx)
	}
}

func TestRegistry_RefreshAllEndToEnd(t *testing.T) {
	t.Parallel()

	reg := NewRegistry[float32](track.All)
	reg.SetWindow(2, 2)

	idx, snd := reg.AddTrack()

	// First refresh over the full history.
	snd.SendSlice([]float32{0.1, -0.2, 0.3, 0.0})
	reg.RefreshAll()

	rep, err := reg.Representation(idx)
	if err != nil {
		t.Fatalf("Representation() error = %v", err)
	}
	if len(rep) != 2 {
		t.Fatalf("Representation() has %d frames, want 2", len(rep))
	}
	// Window [0, 1] makes each frame's magnitude the absolute value of its
	// second sample.
	for i, want := range []float64{0.2, 0.0} {
		if math.Abs(rep[i][0]-want) > 1e-6 {
			t.Errorf("frame %d magnitude = %v, want %v", i, rep[i][0], want)
		}
	}

	// Incremental refresh sees only the two new samples and appends.
	reg.SetPolicy(track.NewOnly)
	snd.SendSlice([]float32{0.5, -0.1})
	reg.RefreshAll()

	rep, _ = reg.Representation(idx)
	if len(rep) != 3 {
		t.Fatalf("Representation() after incremental refresh has %d frames, want 3", len(rep))
	}
	for i, want := range []float64{0.2, 0.0, 0.1} {
		if math.Abs(rep[i][0]-want) > 1e-6 {
			t.Errorf("frame %d magnitude = %v, want %v", i, rep[i][0], want)
		}
	}
}

func TestRegistry_RefreshAllMultipleTracks(t *testing.T) {
	t.Parallel()

	reg := NewRegistry[float32](track.All)
	reg.SetWindow(2, 2)

	idxA, sndA := reg.AddTrack()
	idxB, sndB := reg.AddTrack()

	sndA.SendSlice([]float32{0.0, 0.25})
	sndB.SendSlice([]float32{0.0, 0.75, 0.0, -0.5})
	reg.RefreshAll()

	repA, _ := reg.Representation(idxA)
	repB, _ := reg.Representation(idxB)

	if len(repA) != 1 {
		t.Errorf("track A has %d frames, want 1", len(repA))
	}
	if len(repB) != 2 {
		t.Errorf("track B has %d frames, want 2", len(repB))
	}
	if math.Abs(repA[0][0]-0.25) > 1e-6 {
		t.Errorf("track A magnitude = %v, want 0.25", repA[0][0])
	}
}

func TestRegistry_RefreshAllNoNewSamples(t *testing.T) {
	t.Parallel()

	reg := NewRegistry[float32](track.NewOnly)
	reg.SetWindow(2, 2)

	idx, snd := reg.AddTrack()
	snd.SendSlice([]float32{0.1, 0.2})
	reg.RefreshAll()

	rep, _ := reg.Representation(idx)
	frames := len(rep)

	// An empty selection is a no-op, not an error; nothing changes.
	reg.RefreshAll()
	rep, _ = reg.Representation(idx)
	if len(rep) != frames {
		t.Errorf("frame count changed from %d to %d with no new samples", frames, len(rep))
	}
}

func TestRegistry_RemovedTrackDoesNotBreakRefresh(t *testing.T) {
	t.Parallel()

	reg := NewRegistry[float32](track.All)
	reg.SetWindow(2, 2)

	_, sndA := reg.AddTrack()
	_, sndB := reg.AddTrack()

	sndA.SendSlice([]float32{0.1, 0.2})
	sndB.SendSlice([]float32{0.3, 0.4})
	reg.RefreshAll()

	reg.RemoveTrack(0)
	sndB.SendSlice([]float32{0.5, 0.6})
	reg.RefreshAll()

	rep, err := reg.Representation(0)
	if err != nil {
		t.Fatalf("Representation(0) error = %v", err)
	}
	if len(rep) != 2 {
		t.Errorf("surviving track has %d frames, want 2", len(rep))
	}
}

func TestRegistry_SetWindowAppliesToNewTracks(t *testing.T) {
	t.Parallel()

	reg := NewRegistry[float32](track.All)

	idxDefault, _ := reg.AddTrack()
	reg.SetWindow(64, 16)
	idxCustom, _ := reg.AddTrack()

	trDefault, _ := reg.Track(idxDefault)
	trCustom, _ := reg.Track(idxCustom)

	if got := trDefault.Engine().WindowSize(); got != 1024 {
		t.Errorf("default track window = %d, want 1024", got)
	}
	if got := trCustom.Engine().WindowSize(); got != 64 {
		t.Errorf("custom track window = %d, want 64", got)
	}
	if got := trCustom.Engine().HopSize(); got != 16 {
		t.Errorf("custom track hop = %d, want 16", got)
	}
}

func TestRegistry_Representation_NoSuchTrack(t *testing.T) {
	t.Parallel()

	reg := NewRegistry[float32](track.All)

	if _, err := reg.Representation(0); !errors.Is(err, ErrNoSuchTrack) {
		t.Errorf("Representation(0) error = %v, want ErrNoSuchTrack", err)
	}
}

func TestRegistry_ExportWAV(t *testing.T) {
	t.Parallel()

	reg := NewRegistry[float32](track.All)
	idx, snd := reg.AddTrack()

	snd.SendSlice([]float32{0.0, 0.5, -0.5, 1.0})
	reg.RefreshAll()

	var out memSeeker
	if err := reg.ExportWAV(idx, &out, 8000); err != nil {
		t.Fatalf("ExportWAV() error = %v", err)
	}

	// 44-byte header plus 4 samples of 16-bit PCM.
	if len(out.data) != 44+8 {
		t.Errorf("exported %d bytes, want 52", len(out.data))
	}
}
