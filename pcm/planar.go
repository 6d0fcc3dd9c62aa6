// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"io"

	"github.com/avnerbr/asdr/sdr"
)

// BlockReader turns an interleaved float32 Source into planar blocks for the
// comparator core. Each block carries at most blockSize samples per channel
// and a running timestamp counted in samples. When the configured format is
// FormatFloat64 the samples are widened during deinterleaving.
type BlockReader struct {
	src       Source
	format    sdr.SampleFormat
	channels  int
	blockSize int

	buf   []float32 // interleaved staging buffer
	carry int       // leftover values of a partial frame from the last read
	pts   int64
	eof   bool
}

// NewBlockReader wraps src. blockSize is the maximum per-channel sample
// count of an emitted block.
func NewBlockReader(src Source, format sdr.SampleFormat, blockSize int) (*BlockReader, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBlockSize, blockSize)
	}

	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", sdr.ErrBadChannelCount, channels)
	}

	switch format {
	case sdr.FormatFloat32, sdr.FormatFloat64:
	default:
		return nil, fmt.Errorf("%w: %s", sdr.ErrUnsupportedFormat, format)
	}

	return &BlockReader{
		src:       src,
		format:    format,
		channels:  channels,
		blockSize: blockSize,
		buf:       make([]float32, blockSize*channels),
	}, nil
}

// PTS is the timestamp of the next sample to be emitted, in samples. After
// the source is exhausted it is the terminal timestamp of the stream.
func (r *BlockReader) PTS() int64 { return r.pts }

// ReadBlock reads up to blockSize frames from the source and returns them as
// one planar block. It returns io.EOF once the source is exhausted; a block
// and io.EOF are never returned together.
func (r *BlockReader) ReadBlock() (*sdr.Block, error) {
	if r.eof {
		// A trailing partial frame can never complete; it is dropped.
		return nil, io.EOF
	}

	want := r.blockSize * r.channels
	total := r.carry

	for total < want && !r.eof {
		n, err := r.src.ReadSamples(r.buf[total:want])
		total += n

		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("read source: %w", err)
			}
			r.eof = true
		}
	}

	frames := total / r.channels
	r.carry = total - frames*r.channels

	if frames == 0 {
		return nil, io.EOF
	}

	var blk *sdr.Block

	switch r.format {
	case sdr.FormatFloat32:
		planes := make([][]float32, r.channels)
		for ch := range planes {
			planes[ch] = make([]float32, frames)
		}
		for f := 0; f < frames; f++ {
			base := f * r.channels
			for ch := 0; ch < r.channels; ch++ {
				planes[ch][f] = r.buf[base+ch]
			}
		}
		blk = sdr.NewFloat32Block(planes, r.pts)
	default:
		planes := make([][]float64, r.channels)
		for ch := range planes {
			planes[ch] = make([]float64, frames)
		}
		for f := 0; f < frames; f++ {
			base := f * r.channels
			for ch := 0; ch < r.channels; ch++ {
				planes[ch][f] = float64(r.buf[base+ch])
			}
		}
		blk = sdr.NewFloat64Block(planes, r.pts)
	}

	copy(r.buf, r.buf[frames*r.channels:total])
	r.pts += int64(frames)

	return blk, nil
}
