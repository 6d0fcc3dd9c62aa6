// SPDX-License-Identifier: EPL-2.0

package sdr

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

// Option tunes a Meter at construction time.
type Option func(*Meter)

// WithExecutor replaces the default goroutine executor, e.g. with
// SerialExecutor or a host-provided thread pool.
func WithExecutor(exec Executor) Option {
	return func(m *Meter) {
		if exec != nil {
			m.exec = exec
		}
	}
}

// WithParallelism caps the number of kernel jobs per step. The effective job
// count is min(channels, n). Defaults to runtime.NumCPU().
func WithParallelism(n int) Option {
	return func(m *Meter) {
		if n > 0 {
			m.parallelism = n
		}
	}
}

// WithLogger sets the logger the finalization report is written to.
// Defaults to the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Meter) {
		if log != nil {
			m.log = log
		}
	}
}

// WithMeteringDisabled turns accumulation off: blocks are still synchronized
// and forwarded, but nothing is measured.
func WithMeteringDisabled() Option {
	return func(m *Meter) {
		m.disabled = true
	}
}

func applyOptions(m *Meter, opts []Option) {
	m.exec = GoExecutor{}
	m.parallelism = runtime.NumCPU()
	m.log = logrus.StandardLogger()

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
}
