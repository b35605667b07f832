// SPDX-License-Identifier: EPL-2.0

package impulse

import (
	"fmt"
	"io"

	"github.com/ik5/impulse/formats/wav"
	"github.com/ik5/impulse/sample"
	"github.com/ik5/impulse/utils"
)

// ExportWAV writes track i's accumulated samples as a mono 16-bit PCM WAV
// at sampleRate. Pending samples that were never drained are not included;
// call RefreshAll first for an up-to-date buffer.
func (r *Registry[T]) ExportWAV(i int, w io.WriteSeeker, sampleRate int) error {
	t, err := r.Track(i)
	if err != nil {
		return err
	}

	samples := t.channel.Samples()
	pcm := make([]int16, len(samples))
	for j, v := range samples {
		pcm[j] = utils.Float32ToInt16(float32(sample.Normalize(v)))
	}

	if err := wav.Write16(w, sampleRate, pcm); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
