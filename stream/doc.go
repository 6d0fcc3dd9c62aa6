// SPDX-License-Identifier: EPL-2.0

// Package stream provides in-memory implementations of the queue and sink
// collaborators a sdr.Meter is wired between.
//
// FrameQueue buffers planar blocks pushed by a producer and serves the
// exact-length withdrawals the meter performs, splicing across pushed block
// boundaries. BufferSink and DiscardSink receive the forwarded reference
// blocks and the terminal status.
//
// All types here are meant for the single-goroutine cooperative loop that
// drives a Meter; they are not safe for concurrent use.
package stream
