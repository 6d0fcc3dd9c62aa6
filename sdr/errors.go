// SPDX-License-Identifier: EPL-2.0

package sdr

import "errors"

var (
	// ErrUnsupportedFormat is returned when the negotiated sample encoding is
	// neither FormatFloat32 nor FormatFloat64.
	ErrUnsupportedFormat = errors.New("unsupported sample format")

	// ErrBadChannelCount is returned when the configured channel count is not
	// positive.
	ErrBadChannelCount = errors.New("channel count must be positive")

	// ErrFinalized is returned by Step once Finalize has run.
	ErrFinalized = errors.New("meter already finalized")
)
