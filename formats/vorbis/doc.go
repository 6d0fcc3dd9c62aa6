// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding via
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes natively to float32, so samples pass through without an
// integer conversion step. The decoder returns a pcm.Source of interleaved
// samples in [-1.0, 1.0]; channel count and sample rate follow the file.
//
//	decoder := vorbis.Decoder{}
//	source, err := decoder.Decode(file)
//
// Encoding is not supported.
package vorbis
