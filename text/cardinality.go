// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package text

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/datagen/emitter"
	safemath "github.com/ava-labs/datagen/utils/math"
)

// uniqueLengths lists the distinct values a finite count generator can
// produce, in ascending order.
func uniqueLengths(enum emitter.Enumerable[int]) []int {
	set := make(map[int]struct{})
	for _, l := range enum.Items() {
		set[l] = struct{}{}
	}
	lengths := maps.Keys(set)
	slices.Sort(lengths)
	return lengths
}

func pow64(base uint64, exp int) (uint64, error) {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		var err error
		if result, err = safemath.Mul64(result, base); err != nil {
			return 0, err
		}
	}
	return result, nil
}
