// SPDX-License-Identifier: EPL-2.0

package sdr

// sample constrains the two accepted planar encodings. The accumulation loop
// below is instantiated once per width; both promote to float64 before
// squaring.
type sample interface {
	~float32 | ~float64
}

// channelRange maps job jobnr of nbJobs onto a contiguous half-open channel
// interval. The intervals of all jobs are disjoint and cover [0, channels);
// a channel is never split across two jobs.
func channelRange(channels, jobnr, nbJobs int) (start, end int) {
	return channels * jobnr / nbJobs, channels * (jobnr + 1) / nbJobs
}

// accumulatePlanes folds one aligned block pair into acc for channels
// [start, end). ref and tst must have equal plane counts and equal plane
// lengths; the caller enforces that contract. Sums are kept channel-local
// and added once per channel, so concurrent calls over disjoint ranges never
// touch the same accumulator slot and need no locking.
func accumulatePlanes[S sample](acc []channelAccumulator, ref, tst [][]S, start, end int) {
	for ch := start; ch < end; ch++ {
		us := ref[ch]
		vs := tst[ch]

		var sumU, sumUV float64

		for n := range us {
			u := float64(us[n])
			v := float64(vs[n])
			sumU += u * u
			d := u - v
			sumUV += d * d
		}

		acc[ch].add(sumU, sumUV)
	}
}
