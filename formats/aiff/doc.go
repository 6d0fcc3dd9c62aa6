// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF decoding via github.com/go-audio/aiff.
//
// Only 16-bit PCM files are accepted. The decoder returns a pcm.Source of
// interleaved float32 samples in [-1.0, 1.0].
package aiff
