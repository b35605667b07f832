// SPDX-License-Identifier: EPL-2.0

package impulse

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/impulse/audio"
	"github.com/ik5/impulse/formats/aiff"
	"github.com/ik5/impulse/formats/mp3"
	"github.com/ik5/impulse/formats/vorbis"
	"github.com/ik5/impulse/formats/wav"
	"github.com/ik5/impulse/sample"
	"github.com/ik5/impulse/track"
)

// importBufSize is the pump's read granularity in samples.
const importBufSize = 4096

// NewFormatRegistry returns a format registry with every built-in container
// decoder registered under its file extension. Hosts build their
// file-selection filters from Extensions() and may register additional
// decoders. There is no built-in FLAC decoder: a "flac" import fails with
// ErrUnknownFormat unless the host registers one.
func NewFormatRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	return r
}

// ImportReader decodes the container stream r using the decoder registered
// for ext and pumps its samples into sender. See Pump for the pipeline and
// termination conditions.
func ImportReader[T sample.Sample](ctx context.Context, formats *audio.Registry, ext string, r io.Reader, sender track.Sender[T], targetRate int) error {
	dec, ok := formats.Get(strings.ToLower(ext))
	if !ok {
		return fmt.Errorf("%q: %w", ext, audio.ErrUnknownFormat)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer src.Close()

	return Pump(ctx, src, sender, targetRate)
}

// ImportFile opens path and imports it with the decoder matching its
// extension.
func ImportFile[T sample.Sample](ctx context.Context, formats *audio.Registry, path string, sender track.Sender[T], targetRate int) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return ImportReader(ctx, formats, ext, f, sender, targetRate)
}

// Pump streams src into sender until the source is exhausted. Multi-channel
// input is mixed down to mono, and when targetRate is positive and differs
// from the source rate the stream is resampled first. Pump returns nil on a
// clean end of stream, ctx.Err() on cancellation, and wraps
// track.ErrChannelClosed when the track was removed; the producer must stop
// in every case.
func Pump[T sample.Sample](ctx context.Context, src audio.Source, sender track.Sender[T], targetRate int) error {
	stream := src
	if targetRate > 0 && targetRate != src.SampleRate() {
		stream = audio.NewResampler(stream, targetRate)
	}
	mono := audio.NewMonoMixer(stream)

	buf := make([]float32, importBufSize)
	out := make([]T, importBufSize)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := mono.ReadSamples(buf)
		if n > 0 {
			for i := 0; i < n; i++ {
				out[i] = sample.FromFloat[T](float64(buf[i]))
			}
			if serr := sender.SendSlice(out[:n]); serr != nil {
				return fmt.Errorf("%w", serr)
			}
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
}
