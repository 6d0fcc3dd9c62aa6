// SPDX-License-Identifier: EPL-2.0

package stream

import "github.com/avnerbr/asdr/sdr"

// BufferSink collects every forwarded block. Handy in tests and for callers
// that want the reference stream back out of the comparison.
type BufferSink struct {
	blocks    []*sdr.Block
	samples   int64
	status    error
	statusPTS int64
	closed    bool
}

// NewBufferSink returns an empty collecting sink.
func NewBufferSink() *BufferSink { return &BufferSink{} }

func (s *BufferSink) WriteBlock(b *sdr.Block) error {
	if s.closed {
		return ErrSinkClosed
	}
	s.blocks = append(s.blocks, b)
	s.samples += int64(b.Samples())
	return nil
}

func (s *BufferSink) SetStatus(status error, pts int64) {
	if s.closed {
		return
	}
	s.status = status
	s.statusPTS = pts
	s.closed = true
}

func (s *BufferSink) WantsBlock() bool { return !s.closed }

// Blocks returns the forwarded blocks in arrival order.
func (s *BufferSink) Blocks() []*sdr.Block { return s.blocks }

// Samples reports the total forwarded per-channel sample count.
func (s *BufferSink) Samples() int64 { return s.samples }

// Status reports the forwarded terminal status, if any.
func (s *BufferSink) Status() (error, int64, bool) {
	return s.status, s.statusPTS, s.closed
}

// DiscardSink drops forwarded blocks, keeping only the sample count and the
// terminal status. The high-level comparison loop uses it when nobody
// consumes the reference stream.
type DiscardSink struct {
	samples   int64
	status    error
	statusPTS int64
	closed    bool
}

// NewDiscardSink returns an empty discarding sink.
func NewDiscardSink() *DiscardSink { return &DiscardSink{} }

func (s *DiscardSink) WriteBlock(b *sdr.Block) error {
	if s.closed {
		return ErrSinkClosed
	}
	s.samples += int64(b.Samples())
	return nil
}

func (s *DiscardSink) SetStatus(status error, pts int64) {
	if s.closed {
		return
	}
	s.status = status
	s.statusPTS = pts
	s.closed = true
}

func (s *DiscardSink) WantsBlock() bool { return !s.closed }

// Samples reports the total forwarded per-channel sample count.
func (s *DiscardSink) Samples() int64 { return s.samples }

// Status reports the forwarded terminal status, if any.
func (s *DiscardSink) Status() (error, int64, bool) {
	return s.status, s.statusPTS, s.closed
}
