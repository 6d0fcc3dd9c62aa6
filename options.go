// SPDX-License-Identifier: EPL-2.0

package asdr

import (
	"github.com/sirupsen/logrus"

	"github.com/avnerbr/asdr/sdr"
)

type config struct {
	format      sdr.SampleFormat
	blockSize   int
	parallelism int
	log         logrus.FieldLogger
}

// Option tunes a comparison.
type Option func(*config)

// WithSampleFormat selects the planar sample encoding the comparison runs
// in. Sources deliver float32; FormatFloat64 widens them on the way in.
// Defaults to FormatFloat32.
func WithSampleFormat(format sdr.SampleFormat) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithBlockSize sets the maximum per-channel sample count read from a source
// at a time. Defaults to 4096.
func WithBlockSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.blockSize = n
		}
	}
}

// WithParallelism caps how many goroutines accumulate one block. Defaults to
// the number of CPUs.
func WithParallelism(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.parallelism = n
		}
	}
}

// WithLogger sets the logger the per-channel report is written to.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{
		format:    sdr.FormatFloat32,
		blockSize: 4096,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
