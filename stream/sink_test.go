// SPDX-License-Identifier: EPL-2.0

package stream

import (
	"errors"
	"io"
	"testing"

	"github.com/avnerbr/asdr/sdr"
)

func TestBufferSink_CollectsBlocks(t *testing.T) {
	t.Parallel()

	s := NewBufferSink()

	if !s.WantsBlock() {
		t.Fatal("fresh sink does not want blocks")
	}

	s.WriteBlock(sdr.NewFloat32Block([][]float32{{1, 2}}, 0))
	s.WriteBlock(sdr.NewFloat32Block([][]float32{{3}}, 2))

	if len(s.Blocks()) != 2 {
		t.Fatalf("Blocks() len = %d, want 2", len(s.Blocks()))
	}
	if s.Samples() != 3 {
		t.Errorf("Samples() = %d, want 3", s.Samples())
	}

	s.SetStatus(io.EOF, 3)

	if s.WantsBlock() {
		t.Error("sink still wants blocks after terminal status")
	}

	status, pts, ok := s.Status()
	if !ok || !errors.Is(status, io.EOF) || pts != 3 {
		t.Errorf("Status() = (%v, %d, %v), want (io.EOF, 3, true)", status, pts, ok)
	}

	if err := s.WriteBlock(sdr.NewFloat32Block([][]float32{{4}}, 3)); !errors.Is(err, ErrSinkClosed) {
		t.Errorf("WriteBlock() after status error = %v, want ErrSinkClosed", err)
	}
}

func TestDiscardSink_CountsOnly(t *testing.T) {
	t.Parallel()

	s := NewDiscardSink()

	s.WriteBlock(sdr.NewFloat64Block([][]float64{{1, 2, 3}}, 0))
	s.WriteBlock(sdr.NewFloat64Block([][]float64{{4}}, 3))

	if s.Samples() != 4 {
		t.Errorf("Samples() = %d, want 4", s.Samples())
	}

	errBoom := errors.New("boom")
	s.SetStatus(errBoom, 4)

	// The first status wins.
	s.SetStatus(io.EOF, 9)

	status, pts, ok := s.Status()
	if !ok || !errors.Is(status, errBoom) || pts != 4 {
		t.Errorf("Status() = (%v, %d, %v), want (boom, 4, true)", status, pts, ok)
	}

	if err := s.WriteBlock(sdr.NewFloat64Block([][]float64{{5}}, 4)); !errors.Is(err, ErrSinkClosed) {
		t.Errorf("WriteBlock() after status error = %v, want ErrSinkClosed", err)
	}
}
