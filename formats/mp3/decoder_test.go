// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates gomp3.Decoder output.
type mockMP3Reader struct {
	sampleRate int
	samples    []int16
	offset     int
	failRead   bool
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.failRead {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	bytesAvailable := (len(m.samples) - m.offset) * 2
	bytesToRead := min(len(buf), bytesAvailable)
	bytesToRead = (bytesToRead / 2) * 2
	samplesToRead := bytesToRead / 2

	for i := 0; i < samplesToRead; i++ {
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(m.samples[m.offset+i]))
	}
	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return bytesToRead, io.EOF
	}
	return bytesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte("This is not MP3 data")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestSource_SampleConversion(t *testing.T) {
	t.Parallel()

	mock := &mockMP3Reader{
		sampleRate: 44100,
		samples:    []int16{0, 16384, -16384, 32767},
	}
	src := &source{dec: mock, sampleRate: mock.sampleRate, channels: 2}

	buf := make([]float32, 4)
	n, _ := src.ReadSamples(buf)
	if n != 4 {
		t.Fatalf("ReadSamples() = %d, want 4", n)
	}

	for i, want := range []float32{0, 0.5, -0.5, 32767.0 / 32768.0} {
		if math.Abs(float64(buf[i]-want)) > 1e-6 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	mock := &mockMP3Reader{sampleRate: 48000}
	src := &source{dec: mock, sampleRate: mock.sampleRate, channels: 2}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := &source{dec: &mockMP3Reader{failRead: true}, sampleRate: 44100, channels: 2}

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if n != 0 {
		t.Errorf("ReadSamples() = %d, want 0", n)
	}
	if err != io.ErrUnexpectedEOF {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSource_EOF(t *testing.T) {
	t.Parallel()

	mock := &mockMP3Reader{sampleRate: 44100, samples: []int16{1, 2}}
	src := &source{dec: mock, sampleRate: mock.sampleRate, channels: 2}

	buf := make([]float32, 8)
	n, err := src.ReadSamples(buf)
	if n != 2 {
		t.Errorf("ReadSamples() = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}
