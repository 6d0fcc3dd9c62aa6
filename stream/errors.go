// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	// ErrBlockShape is returned when a pushed block does not match the
	// queue's sample format and channel count, or its planes have uneven
	// lengths.
	ErrBlockShape = errors.New("block shape mismatch")

	// ErrQueueClosed is returned when pushing to a queue that already
	// carries a terminal status.
	ErrQueueClosed = errors.New("queue already closed")

	// ErrShortWithdrawal is returned when a withdrawal requests more samples
	// than the queue has buffered. Nothing is consumed in that case.
	ErrShortWithdrawal = errors.New("not enough buffered samples")

	// ErrSinkClosed is returned when writing to a sink that already received
	// a terminal status.
	ErrSinkClosed = errors.New("sink already closed")
)
