// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/avnerbr/asdr/sdr"
)

// FrameQueue buffers planar audio for one input of a sdr.Meter.
//
// Pushed blocks are shape-checked against the queue's format and channel
// count and appended to per-channel pending buffers, so withdrawals can
// splice any run of samples regardless of how the producer framed them. The
// timestamp of the first pending sample advances with every withdrawal.
//
// A terminal status set with Close is acknowledged only once the buffered
// samples are drained; a failure set with Fail is visible immediately and
// suppresses whatever is still buffered.
type FrameQueue struct {
	format   sdr.SampleFormat
	channels int

	f32 [][]float32
	f64 [][]float64

	pts       int64
	status    error
	statusPTS int64
	wanted    bool
}

// NewFrameQueue builds an empty queue for the given planar format and
// channel count.
func NewFrameQueue(format sdr.SampleFormat, channels int) (*FrameQueue, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", sdr.ErrBadChannelCount, channels)
	}

	q := &FrameQueue{format: format, channels: channels}

	switch format {
	case sdr.FormatFloat32:
		q.f32 = make([][]float32, channels)
	case sdr.FormatFloat64:
		q.f64 = make([][]float64, channels)
	default:
		return nil, fmt.Errorf("%w: %s", sdr.ErrUnsupportedFormat, format)
	}

	return q, nil
}

// Push appends one block to the queue. The block's pts seeds the queue
// timestamp when nothing is pending; afterwards timing is derived from the
// consumed sample count.
func (q *FrameQueue) Push(b *sdr.Block) error {
	if q.status != nil {
		return ErrQueueClosed
	}
	if b.Format() != q.format || b.Channels() != q.channels {
		return fmt.Errorf("%w: got %s/%d channels, queue is %s/%d",
			ErrBlockShape, b.Format(), b.Channels(), q.format, q.channels)
	}

	samples := b.Samples()

	switch q.format {
	case sdr.FormatFloat32:
		for ch, plane := range b.Float32Planes() {
			if len(plane) != samples {
				return fmt.Errorf("%w: uneven plane lengths", ErrBlockShape)
			}
			if len(q.f32[ch]) == 0 && ch == 0 {
				q.pts = b.PTS()
			}
			q.f32[ch] = append(q.f32[ch], plane...)
		}
	case sdr.FormatFloat64:
		for ch, plane := range b.Float64Planes() {
			if len(plane) != samples {
				return fmt.Errorf("%w: uneven plane lengths", ErrBlockShape)
			}
			if len(q.f64[ch]) == 0 && ch == 0 {
				q.pts = b.PTS()
			}
			q.f64[ch] = append(q.f64[ch], plane...)
		}
	}

	q.wanted = false

	return nil
}

// Close marks the stream as normally terminated at pts. Buffered samples
// remain consumable; the status is acknowledged once they are drained.
func (q *FrameQueue) Close(pts int64) {
	if q.status != nil {
		return
	}
	q.status = io.EOF
	q.statusPTS = pts
	q.wanted = false
}

// Fail marks the stream as abruptly failed at pts. The failure is visible
// immediately and buffered samples are no longer served.
func (q *FrameQueue) Fail(err error, pts int64) {
	if err == nil || q.status != nil {
		return
	}
	q.status = err
	q.statusPTS = pts
	q.wanted = false
}

func (q *FrameQueue) failed() bool {
	return q.status != nil && !errors.Is(q.status, io.EOF)
}

// QueuedSamples reports the buffered per-channel sample count. A failed
// queue reports zero.
func (q *FrameQueue) QueuedSamples() int {
	if q.failed() {
		return 0
	}
	if q.format == sdr.FormatFloat64 {
		return len(q.f64[0])
	}
	return len(q.f32[0])
}

// ConsumeSamples withdraws exactly n samples as one block. It fails without
// consuming anything when the queue cannot supply the full count.
func (q *FrameQueue) ConsumeSamples(n int) (*sdr.Block, error) {
	if q.failed() {
		return nil, q.status
	}

	queued := q.QueuedSamples()
	if n <= 0 || n > queued {
		return nil, fmt.Errorf("%w: requested %d, have %d", ErrShortWithdrawal, n, queued)
	}

	pts := q.pts
	q.pts += int64(n)

	switch q.format {
	case sdr.FormatFloat32:
		planes := make([][]float32, q.channels)
		for ch := range q.f32 {
			planes[ch] = q.f32[ch][:n:n]
			q.f32[ch] = q.f32[ch][n:]
		}
		return sdr.NewFloat32Block(planes, pts), nil
	default:
		planes := make([][]float64, q.channels)
		for ch := range q.f64 {
			planes[ch] = q.f64[ch][:n:n]
			q.f64[ch] = q.f64[ch][n:]
		}
		return sdr.NewFloat64Block(planes, pts), nil
	}
}

// Status reports the terminal status once it applies: immediately for a
// failure, after draining for normal end of stream.
func (q *FrameQueue) Status() (error, int64, bool) {
	if q.status == nil {
		return nil, 0, false
	}
	if !q.failed() && q.QueuedSamples() > 0 {
		return nil, 0, false
	}
	return q.status, q.statusPTS, true
}

// RequestFrame flags that the consumer wants more data. The producer side
// polls FrameWanted and feeds the queue.
func (q *FrameQueue) RequestFrame() {
	if q.status == nil {
		q.wanted = true
	}
}

// FrameWanted reports whether the consumer asked for more data since the
// last Push.
func (q *FrameQueue) FrameWanted() bool { return q.wanted }
