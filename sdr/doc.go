// SPDX-License-Identifier: EPL-2.0

// Package sdr measures the Signal-to-Distortion Ratio between two
// synchronized audio streams.
//
// The package is built around three pieces:
//   - per-channel accumulators holding running signal and distortion energy
//   - a numeric kernel that folds one aligned block pair into the accumulators,
//     optionally sharded across disjoint channel ranges for parallel execution
//   - the Meter, a pull-based state machine that withdraws matched-length
//     blocks from two input queues, runs the kernel, and forwards the
//     reference block downstream untouched
//
// # Usage
//
// Construct a Meter over two InputQueue implementations and an OutputSink,
// then drive it cooperatively:
//
//	meter, err := sdr.New(sdr.Config{Channels: 2, Format: sdr.FormatFloat32}, in0, in1, out)
//	if err != nil {
//	    return err
//	}
//	for {
//	    res, err := meter.Step()
//	    if err != nil {
//	        return err
//	    }
//	    switch res {
//	    case sdr.StepFinished:
//	        results := meter.Finalize()
//	        // per-channel SDR in dB
//	    case sdr.StepYielded:
//	        // feed the queues that requested frames, then step again
//	    }
//	}
//
// A Step either makes progress (one aligned block consumed), yields because no
// matched data is buffered yet, or finishes after forwarding a terminal status.
// Yielding is not an error; callers feed more input and step again.
//
// # Results
//
// Finalize computes 20*log10(energy/distortion) per channel. A test stream
// identical to the reference yields +Inf dB; a silent reference compared with a
// silent test yields NaN (0/0). Both are reported verbatim.
//
// # Sample formats
//
// Exactly two planar sample encodings are accepted, FormatFloat32 and
// FormatFloat64. Accumulation always happens in float64 regardless of the
// storage width.
package sdr
