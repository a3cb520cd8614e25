// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Sampling is performed by repeatedly drawing with replacement from the
// remaining weights, zeroing a slot's weight once it is accepted so that
// rebuilt rounds cannot pick it again. Draws that land on an already-zeroed
// slot within a round are skipped.
//
// Each round costs O(n) to rebuild the cumulative weights plus O(log(n)) per
// draw. Fast while k is small relative to the population; the caller
// guarantees k does not exceed the number of positively weighted slots, so
// every round makes progress.
func sampleByElimination(src Source, weights []float64, k int) []int {
	remaining := make([]float64, len(weights))
	copy(remaining, weights)

	picked := make([]int, 0, k)
	for len(picked) < k {
		cum := cumSum(remaining)
		total := cum[len(cum)-1]
		need := k - len(picked)
		for i := 0; i < need; i++ {
			index := quantile(src, cum, total)
			if remaining[index] == 0 {
				// Already eliminated this round; the next round's rebuilt
				// weights exclude it entirely.
				continue
			}
			remaining[index] = 0
			picked = append(picked, index)
		}
	}
	return picked
}
