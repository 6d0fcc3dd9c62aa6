// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic pcm.Source implementations for tests.
package audiotest

import (
	"io"
	"math"
)

// MockSource generates audio from a waveform function. It implements
// pcm.Source (without importing it, to stay usable from every package).
type MockSource struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int // per channel
	waveform     func(sample, channel int) float32
}

// NewMockSource creates a source generating totalSamples samples per channel
// from the waveform function.
func NewMockSource(sampleRate, channels, totalSamples int, waveform func(sample, channel int) float32) *MockSource {
	return &MockSource{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource generates all zeros.
func NewSilentSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return 0
	})
}

// NewSineSource generates a sine wave at the given frequency, identical on
// every channel.
func NewSineSource(sampleRate, channels, totalSamples int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource generates a constant value on every channel.
func NewConstantSource(sampleRate, channels, totalSamples int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

// NewRampSource counts 1, 2, 3, ... per channel, offset by the channel
// index. Exact in float32, which makes hand-computed energy sums possible.
func NewRampSource(sampleRate, channels, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, totalSamples, func(sample, channel int) float32 {
		return float32(sample + 1 + channel)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// Reset rewinds the source so it can be read again.
func (m *MockSource) Reset() { m.generated = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if remaining := m.totalSamples - m.generated; frames > remaining {
		frames = remaining
	}

	for f := 0; f < frames; f++ {
		sample := m.generated + f
		for ch := 0; ch < m.channels; ch++ {
			dst[f*m.channels+ch] = m.waveform(sample, ch)
		}
	}

	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}

// FailingSource delivers samples from Inner until FailAfter samples (per
// channel) have been produced, then returns Err on every read.
type FailingSource struct {
	Inner     *MockSource
	FailAfter int
	Err       error

	read int
}

func (f *FailingSource) SampleRate() int { return f.Inner.SampleRate() }
func (f *FailingSource) Channels() int   { return f.Inner.Channels() }
func (f *FailingSource) BufSize() int    { return f.Inner.BufSize() }
func (f *FailingSource) Close() error    { return nil }

func (f *FailingSource) ReadSamples(dst []float32) (int, error) {
	channels := f.Inner.Channels()
	left := (f.FailAfter - f.read) * channels
	if left <= 0 {
		return 0, f.Err
	}
	if len(dst) > left {
		dst = dst[:left]
	}

	n, err := f.Inner.ReadSamples(dst)
	f.read += n / channels
	return n, err
}
