// SPDX-License-Identifier: EPL-2.0

package sdr

// channelAccumulator carries the running totals for one channel: energy is
// the accumulated squared reference signal, distortion the accumulated
// squared difference between reference and test. Both only ever grow, since
// every addend is a square.
type channelAccumulator struct {
	energy     float64
	distortion float64
}

// add folds one block's channel-local sums into the totals. Callers pass
// non-negative deltas; there is no reset and no overflow handling beyond
// float64 range.
func (a *channelAccumulator) add(energy, distortion float64) {
	a.energy += energy
	a.distortion += distortion
}
