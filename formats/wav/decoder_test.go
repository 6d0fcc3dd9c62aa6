// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// plainReader hides Seek so Decode takes the buffering path.
type plainReader struct {
	r io.Reader
}

func (p *plainReader) Read(b []byte) (int, error) { return p.r.Read(b) }

func encodeWAV(t *testing.T, sampleRate, channels int, samples []int16) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := WriteWAV16(&buf, sampleRate, channels, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	return buf.Bytes()
}

func readAllSamples(t *testing.T, src interface {
	ReadSamples([]float32) (int, error)
}) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, 64)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestDecoder_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 16384, -16384, 32767, -32768, 1}
	encoded := encodeWAV(t, 8000, 1, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	got := readAllSamples(t, src)
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		want := float32(s) / 32768.0
		if got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestDecoder_Stereo(t *testing.T) {
	t.Parallel()

	// Interleaved L/R pairs.
	samples := []int16{100, -100, 200, -200, 300, -300}
	encoded := encodeWAV(t, 44100, 2, samples)

	src, err := Decoder{}.Decode(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", src.Channels())
	}

	got := readAllSamples(t, src)
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		if want := float32(s) / 32768.0; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestDecoder_PlainReader(t *testing.T) {
	t.Parallel()

	encoded := encodeWAV(t, 8000, 1, []int16{1, 2, 3})

	src, err := Decoder{}.Decode(&plainReader{r: bytes.NewReader(encoded)})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if got := readAllSamples(t, src); len(got) != 3 {
		t.Errorf("decoded %d samples, want 3", len(got))
	}
}

func TestDecoder_RejectsGarbage(t *testing.T) {
	t.Parallel()

	garbage := bytes.NewReader([]byte("this is definitely not a wav file at all"))

	if _, err := (Decoder{}).Decode(garbage); !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}
