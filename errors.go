// SPDX-License-Identifier: EPL-2.0

package asdr

import "errors"

var (
	// ErrSourceMismatch is returned when the two sources disagree on channel
	// count or sample rate. Rate or layout conversion is an upstream
	// concern; it is never attempted here.
	ErrSourceMismatch = errors.New("sources disagree on channel count or sample rate")
)
