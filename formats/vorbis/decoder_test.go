// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// fakeOgg serves a fixed stream of interleaved float samples.
type fakeOgg struct {
	channels int
	data     []float32
	pos      int

	requests []int
}

func (f *fakeOgg) SampleRate() int { return 48000 }
func (f *fakeOgg) Channels() int   { return f.channels }

func (f *fakeOgg) Read(dst []float32) (int, error) {
	f.requests = append(f.requests, len(dst))
	if f.pos >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(dst, f.data[f.pos:])
	f.pos += n
	return n, nil
}

func TestSource_ReadsFrames(t *testing.T) {
	t.Parallel()

	fake := &fakeOgg{channels: 2, data: []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3}}
	s := &source{dec: fake, sampleRate: 48000, channels: 2}

	dst := make([]float32, 6)
	n, err := s.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 6 {
		t.Fatalf("ReadSamples() n = %d, want 6", n)
	}
	for i, want := range fake.data {
		if dst[i] != want {
			t.Errorf("sample %d = %v, want %v", i, dst[i], want)
		}
	}

	if _, err := s.ReadSamples(dst); err != io.EOF {
		t.Errorf("ReadSamples() after exhaustion error = %v, want io.EOF", err)
	}
}

func TestSource_RoundsRequestToWholeFrames(t *testing.T) {
	t.Parallel()

	fake := &fakeOgg{channels: 2, data: make([]float32, 16)}
	s := &source{dec: fake, sampleRate: 48000, channels: 2}

	// 5 values is two and a half stereo frames; only two may be requested.
	dst := make([]float32, 5)
	n, err := s.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 4 {
		t.Errorf("ReadSamples() n = %d, want 4", n)
	}
	if len(fake.requests) != 1 || fake.requests[0] != 4 {
		t.Errorf("decoder request sizes = %v, want [4]", fake.requests)
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	garbage := bytes.NewReader([]byte("OggS but not really, this is not a vorbis stream"))

	if _, err := (Decoder{}).Decode(garbage); err == nil {
		t.Error("Decode() succeeded on garbage input")
	}
}
