// SPDX-License-Identifier: EPL-2.0

// Package pcm defines the audio source plumbing the comparator is fed from.
//
// # Source Interface
//
// A Source delivers interleaved float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders in formats/ implement it. io.EOF signals normal end of
// stream; a read may return both samples and io.EOF.
//
// # Planar Blocks
//
// The comparator core works on planar blocks, one sample slice per channel.
// BlockReader bridges the two worlds: it reads interleaved samples from a
// Source and emits sdr.Block values of a configured maximum size, widening to
// float64 when the stream is configured for that format.
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := pcm.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.Get("wav")
package pcm
