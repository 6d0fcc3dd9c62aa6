// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding for the comparator and a small PCM
// writer for producing test inputs.
//
// Decoding is backed by github.com/go-audio/wav and supports 16-bit PCM
// files with any channel count and sample rate:
//
//	decoder := wav.Decoder{}
//	source, err := decoder.Decode(file)
//
// The decoder returns a pcm.Source delivering interleaved float32 samples in
// [-1.0, 1.0].
//
// WriteWAV16 writes a mono 16-bit PCM file:
//
//	wav.WriteWAV16(w, 8000, samples)
package wav
