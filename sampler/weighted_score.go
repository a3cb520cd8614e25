// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"

	"github.com/ava-labs/datagen/utils"
)

var _ utils.Sortable[scoredSlot] = scoredSlot{}

type scoredSlot struct {
	score float64
	index int
}

// Note that this sorts in order of decreasing score.
func (s scoredSlot) Less(other scoredSlot) bool {
	return s.score > other.score
}

// Sampling is performed by assigning every positively weighted slot the
// score ln(U)/w, with U an independent uniform(0,1) draw and w the slot's
// weight, then sorting by score and keeping the k best. Zero-weight slots
// are excluded before scoring; their score would be undefined.
//
// One uniform draw per positively weighted slot and an O(n * log(n)) sort,
// regardless of k. Outperforms elimination as k approaches the population
// size.
func sampleByScore(src Source, weights []float64, k int) []int {
	scored := make([]scoredSlot, 0, len(weights))
	for i, weight := range weights {
		if weight == 0 {
			continue
		}
		// math.Log(0) is -Inf, which sorts last and stays a valid, merely
		// hopeless, score.
		scored = append(scored, scoredSlot{
			score: math.Log(Float64(src)) / weight,
			index: i,
		})
	}
	utils.Sort(scored)

	picked := make([]int, k)
	for i := range picked {
		picked[i] = scored[i].index
	}
	return picked
}
