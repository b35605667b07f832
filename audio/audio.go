// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sort"
	"sync"
)

// Source is a stream of decoded PCM audio.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels count (1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1] and
	// returns the number of values written. n == 0 with err == io.EOF means
	// the stream is finished.
	ReadSamples(dst []float32) (n int, err error)
	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from a container stream.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry maps container file extensions ("wav", "mp3", "ogg") to their
// decoders. Safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	codecs map[string]Decoder
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Decoder)}
}

// Register binds ext to d, replacing any previous binding.
func (r *Registry) Register(ext string, d Decoder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[ext] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.codecs[ext]
	return d, ok
}

// Extensions returns every registered extension, sorted. Hosts use this to
// build file-selection filters.
func (r *Registry) Extensions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
