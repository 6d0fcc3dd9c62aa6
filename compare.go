// SPDX-License-Identifier: EPL-2.0

package asdr

import (
	"errors"
	"fmt"
	"io"

	"github.com/avnerbr/asdr/pcm"
	"github.com/avnerbr/asdr/sdr"
	"github.com/avnerbr/asdr/stream"
)

// Compare measures the per-channel SDR of tst against ref and returns one
// Result per channel once both streams are exhausted.
//
// The sources must agree on channel count and sample rate. When their
// lengths differ, the comparison covers the shorter stream; trailing samples
// of the longer one are never read past the point where no aligned pair can
// form. Neither source is closed.
//
//	results, err := asdr.Compare(ref, tst, asdr.WithBlockSize(1024))
func Compare(ref, tst pcm.Source, opts ...Option) ([]sdr.Result, error) {
	if ref.Channels() != tst.Channels() || ref.SampleRate() != tst.SampleRate() {
		return nil, fmt.Errorf("%w: %dch@%dHz vs %dch@%dHz", ErrSourceMismatch,
			ref.Channels(), ref.SampleRate(), tst.Channels(), tst.SampleRate())
	}

	cfg := applyOptions(opts)
	channels := ref.Channels()

	var (
		queues  [2]*stream.FrameQueue
		readers [2]*pcm.BlockReader
	)

	for i, src := range [2]pcm.Source{ref, tst} {
		q, err := stream.NewFrameQueue(cfg.format, channels)
		if err != nil {
			return nil, err
		}

		r, err := pcm.NewBlockReader(src, cfg.format, cfg.blockSize)
		if err != nil {
			return nil, err
		}

		queues[i] = q
		readers[i] = r
	}

	sink := stream.NewDiscardSink()

	meterOpts := []sdr.Option{sdr.WithParallelism(cfg.parallelism)}
	if cfg.log != nil {
		meterOpts = append(meterOpts, sdr.WithLogger(cfg.log))
	}

	meter, err := sdr.New(sdr.Config{Channels: channels, Format: cfg.format},
		queues[0], queues[1], sink, meterOpts...)
	if err != nil {
		return nil, err
	}

	var exhausted [2]bool

	for {
		res, err := meter.Step()
		if err != nil {
			return nil, err
		}

		if res == sdr.StepFinished {
			break
		}
		if res == sdr.StepProgressed {
			continue
		}

		// Yielded: feed whichever input asked for a frame.
		for i := range queues {
			if exhausted[i] || !queues[i].FrameWanted() {
				continue
			}

			blk, err := readers[i].ReadBlock()
			if errors.Is(err, io.EOF) {
				queues[i].Close(readers[i].PTS())
				exhausted[i] = true
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("input %d: %w", i, err)
			}

			if err := queues[i].Push(blk); err != nil {
				return nil, fmt.Errorf("input %d: %w", i, err)
			}
		}
	}

	results := meter.Finalize()

	if status, _, ok := sink.Status(); ok && !errors.Is(status, io.EOF) {
		return nil, status
	}

	return results, nil
}
