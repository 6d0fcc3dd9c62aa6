// SPDX-License-Identifier: EPL-2.0

// Package asdr measures the per-channel Signal-to-Distortion Ratio between a
// reference audio stream and a test stream.
//
// The two streams must agree on channel count and sample rate; the package
// measures, it never resamples or realigns. The reference signal passes
// through unmodified, the test signal is only read.
//
// # Quick Start
//
//	refFile, _ := os.Open("reference.wav")
//	tstFile, _ := os.Open("encoded.wav")
//
//	decoder := wav.Decoder{}
//	ref, _ := decoder.Decode(refFile)
//	tst, _ := decoder.Decode(tstFile)
//
//	results, err := asdr.Compare(ref, tst)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range results {
//	    fmt.Printf("channel %d: %g dB\n", r.Channel, r.DB)
//	}
//
// A test stream identical to the reference yields +Inf dB. A test stream of
// pure silence yields 0 dB. Comparing silence with silence yields NaN; the
// value is reported as computed.
//
// # Supported Formats
//
// Decoders for WAV, MP3, Ogg Vorbis and AIFF live in the formats
// subpackages; anything implementing pcm.Source can be compared.
//
// # Lower-Level Use
//
// The sdr subpackage exposes the synchronizing meter directly for hosts that
// bring their own frame queues, sinks, or thread pool. The stream subpackage
// provides the in-memory queue and sinks this package wires it with.
package asdr
