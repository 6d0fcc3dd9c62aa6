// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding via github.com/hajimehoshi/go-mp3.
//
// The decoder returns a pcm.Source delivering interleaved float32 samples in
// [-1.0, 1.0]. go-mp3 always produces two-channel output, so a reference
// stream compared against an MP3 encode must be stereo as well.
//
//	decoder := mp3.Decoder{}
//	source, err := decoder.Decode(file)
//
// Encoding is not supported.
package mp3
