// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	// ErrBadBlockSize is returned when a BlockReader is built with a
	// non-positive block size.
	ErrBadBlockSize = errors.New("block size must be positive")
)
