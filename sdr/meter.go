// SPDX-License-Identifier: EPL-2.0

package sdr

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// InputQueue is one buffered upstream of the Meter. Implementations queue
// planar blocks of a fixed format and channel count; the Meter withdraws
// matched-length runs of samples from two of them.
type InputQueue interface {
	// QueuedSamples reports how many samples are currently buffered.
	QueuedSamples() int

	// ConsumeSamples withdraws exactly n buffered samples as one block,
	// spliced across frame boundaries if needed. It fails without consuming
	// anything when fewer than n samples are buffered.
	ConsumeSamples(n int) (*Block, error)

	// Status reports the terminal status of the stream, if any, with the
	// timestamp it applies at. io.EOF is normal end of stream; any other
	// error is an abrupt upstream failure.
	Status() (status error, pts int64, ok bool)

	// RequestFrame asks the upstream for more data. It never blocks.
	RequestFrame()
}

// OutputSink is the downstream collaborator reference blocks are forwarded to.
type OutputSink interface {
	// WriteBlock hands one forwarded block to the sink.
	WriteBlock(b *Block) error

	// SetStatus forwards a terminal status with its timestamp.
	SetStatus(status error, pts int64)

	// WantsBlock reports whether the sink is ready for more data.
	WantsBlock() bool
}

// Config is the negotiated stream configuration, fixed for the life of a
// Meter.
type Config struct {
	Channels int
	Format   SampleFormat
}

// StepResult is the outcome of one Meter step.
type StepResult uint8

const (
	// StepYielded means no matched data was buffered; the caller should feed
	// more input and step again. Not an error.
	StepYielded StepResult = iota
	// StepProgressed means one aligned block pair was consumed and the
	// reference block forwarded.
	StepProgressed
	// StepFinished means a terminal status was forwarded downstream; the
	// caller should Finalize.
	StepFinished
)

func (r StepResult) String() string {
	switch r {
	case StepProgressed:
		return "progressed"
	case StepFinished:
		return "finished"
	default:
		return "yielded"
	}
}

// Result is the finalized measurement of one channel. DB is
// 20*log10(Energy/Distortion) and may be +Inf (zero distortion) or NaN
// (silence compared with silence); both are reported as-is.
type Result struct {
	Channel    int
	Energy     float64
	Distortion float64
	DB         float64
}

// Meter synchronizes two input streams and accumulates the per-channel SDR.
//
// A Meter is driven cooperatively from a single goroutine: every Step either
// consumes one aligned block pair, yields because no matched data is buffered
// yet, or finishes after forwarding a terminal status. Only the accumulation
// kernel inside a step fans out to the executor, over disjoint channel
// ranges, so the accumulator array needs no locking. Totals are numerically
// equivalent for any job count, but not guaranteed bit-exact across different
// counts since float addition is not associative.
type Meter struct {
	channels    int
	format      SampleFormat
	acc         []channelAccumulator
	cache       [2]*Block
	in          [2]InputQueue
	out         OutputSink
	filter      func(jobnr, nbJobs int)
	exec        Executor
	parallelism int
	disabled    bool
	log         logrus.FieldLogger
	finalized   bool
}

// New builds a Meter for the negotiated configuration over two input queues
// and one sink. It fails for a non-positive channel count or a sample format
// other than the two accepted ones.
func New(cfg Config, ref, tst InputQueue, out OutputSink, opts ...Option) (*Meter, error) {
	if cfg.Channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadChannelCount, cfg.Channels)
	}

	m := &Meter{
		channels: cfg.Channels,
		format:   cfg.Format,
		acc:      make([]channelAccumulator, cfg.Channels),
		in:       [2]InputQueue{ref, tst},
		out:      out,
	}

	// The numeric specialization is picked once here and fixed for the life
	// of the stream.
	switch cfg.Format {
	case FormatFloat32:
		m.filter = func(jobnr, nbJobs int) {
			start, end := channelRange(m.channels, jobnr, nbJobs)
			accumulatePlanes(m.acc, m.cache[0].f32, m.cache[1].f32, start, end)
		}
	case FormatFloat64:
		m.filter = func(jobnr, nbJobs int) {
			start, end := channelRange(m.channels, jobnr, nbJobs)
			accumulatePlanes(m.acc, m.cache[0].f64, m.cache[1].f64, start, end)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, cfg.Format)
	}

	applyOptions(m, opts)

	return m, nil
}

// Step runs one iteration of the synchronization loop.
//
// When both inputs have buffered samples, it withdraws min(queued) samples
// from each as one aligned pair, accumulates, drops the test-side block and
// forwards the reference-side block. When neither has data, it acknowledges a
// pending terminal status or requests frames from the starved inputs. A
// withdrawal that cannot supply the exact requested count fails the whole
// step: both cached blocks are released, nothing is accumulated, and the
// error is returned.
func (m *Meter) Step() (StepResult, error) {
	if m.finalized {
		return StepFinished, ErrFinalized
	}

	// An abrupt upstream failure is propagated before anything else; no
	// further accumulation happens for a failed pair.
	for i := range m.in {
		if status, pts, ok := m.in[i].Status(); ok && !errors.Is(status, io.EOF) {
			m.out.SetStatus(status, pts)
			return StepFinished, nil
		}
	}

	available := min(m.in[0].QueuedSamples(), m.in[1].QueuedSamples())
	if available > 0 {
		for i := range m.in {
			blk, err := m.in[i].ConsumeSamples(available)
			if err != nil {
				m.cache[0] = nil
				m.cache[1] = nil
				return StepYielded, fmt.Errorf("input %d: withdraw %d samples: %w", i, available, err)
			}
			m.cache[i] = blk
		}

		if !m.disabled {
			m.exec.Execute(m.filter, min(m.channels, m.parallelism))
		}

		m.cache[1] = nil
		out := m.cache[0]
		m.cache[0] = nil

		if err := m.out.WriteBlock(out); err != nil {
			return StepYielded, fmt.Errorf("forward block: %w", err)
		}

		return StepProgressed, nil
	}

	for i := range m.in {
		if status, pts, ok := m.in[i].Status(); ok {
			m.out.SetStatus(status, pts)
			return StepFinished, nil
		}
	}

	if m.out.WantsBlock() {
		for i := range m.in {
			if m.in[i].QueuedSamples() > 0 {
				continue
			}
			m.in[i].RequestFrame()
		}
	}

	return StepYielded, nil
}

// Finalize converts the accumulated totals to decibels, reports them, and
// tears the accumulator state down. It runs exactly once; later calls return
// nil.
func (m *Meter) Finalize() []Result {
	if m.finalized {
		return nil
	}
	m.finalized = true

	results := make([]Result, m.channels)
	for ch := range m.acc {
		a := m.acc[ch]
		db := 20 * math.Log10(a.energy/a.distortion)
		results[ch] = Result{
			Channel:    ch,
			Energy:     a.energy,
			Distortion: a.distortion,
			DB:         db,
		}

		m.log.WithFields(logrus.Fields{
			"channel": ch,
			"sdr_db":  db,
		}).Info("SDR")
	}

	m.cache[0] = nil
	m.cache[1] = nil
	m.acc = nil

	return results
}
