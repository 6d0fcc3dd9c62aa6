// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// fakeAiff serves a fixed stream of integer PCM samples.
type fakeAiff struct {
	data []int
	pos  int
}

func (f *fakeAiff) Format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: 8000}
}

func (f *fakeAiff) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if f.pos >= len(f.data) {
		return 0, nil
	}
	n := copy(buf.Data, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ConvertsPCM(t *testing.T) {
	t.Parallel()

	samples := []int{0, 16384, -16384, 32767, -32768}
	s := &source{dec: &fakeAiff{data: samples}, sampleRate: 8000, channels: 1}

	dst := make([]float32, len(samples))
	n, err := s.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	for i, raw := range samples {
		if want := float32(raw) / 32768.0; dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}

	if _, err := s.ReadSamples(dst); err != io.EOF {
		t.Errorf("ReadSamples() after exhaustion error = %v, want io.EOF", err)
	}
}

func TestSource_PartialReadEndsStream(t *testing.T) {
	t.Parallel()

	s := &source{dec: &fakeAiff{data: []int{100, 200}}, sampleRate: 8000, channels: 1}

	dst := make([]float32, 8)
	n, err := s.ReadSamples(dst)
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}
	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF on final partial read", err)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	garbage := bytes.NewReader([]byte("FORM but the rest of this is certainly not an aiff"))

	if _, err := (Decoder{}).Decode(garbage); !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}
