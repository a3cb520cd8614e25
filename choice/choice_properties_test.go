// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choice

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/ava-labs/datagen/emitter"
	"github.com/ava-labs/datagen/utils"
)

func TestChoiceProperties(t *testing.T) {
	choiceProperties().TestingRun(t)
}

func choiceProperties() *gopter.Properties {
	properties := gopter.NewProperties(nil)

	properties.Property("identically seeded twins agree over any op sequence", prop.ForAll(
		func(weights []float64, seed int64, ops []int) string {
			for _, policy := range []Policy{FullReplacement, NoReplacement, PerCallOnly} {
				if msg := checkTwinAgreement(weights, seed, ops, policy); msg != "" {
					return fmt.Sprintf("%s: %s", policy, msg)
				}
			}
			return ""
		},
		gen.SliceOfN(8, gen.Float64Range(0, 5)),
		gen.Int64(),
		gen.SliceOfN(12, gen.IntRange(0, 11)),
	))

	properties.Property("reset replays the emitted sequence", prop.ForAll(
		func(weights []float64, seed int64, count int) string {
			positive := positiveCount(weights)
			if positive == 0 {
				return ""
			}
			for _, policy := range []Policy{FullReplacement, NoReplacement, PerCallOnly} {
				c, err := buildIndexChoice(weights, seed, policy)
				if err != nil {
					return fmt.Sprintf("%s: unexpected construction error: %v", policy, err)
				}
				k := 1 + count%positive
				first, err := c.EmitMany(k)
				if err != nil {
					return fmt.Sprintf("%s: unexpected emission error: %v", policy, err)
				}
				c.Reset()
				second, err := c.EmitMany(k)
				if err != nil {
					return fmt.Sprintf("%s: unexpected replay error: %v", policy, err)
				}
				if !reflect.DeepEqual(first, second) {
					return fmt.Sprintf("%s: replay mismatch: %v vs %v", policy, first, second)
				}
			}
			return ""
		},
		gen.SliceOfN(8, gen.Float64Range(0, 3)),
		gen.Int64(),
		gen.IntRange(1, 64),
	))

	properties.Property("derived cumulative weights are non-decreasing", prop.ForAll(
		func(weights []float64, seed int64) string {
			if positiveCount(weights) == 0 {
				return ""
			}
			c, err := buildIndexChoice(weights, seed, FullReplacement)
			if err != nil {
				return fmt.Sprintf("unexpected construction error: %v", err)
			}
			cum := c.CumulativeWeights()
			if len(cum) != len(weights) {
				return fmt.Sprintf("cumulative length %d for %d weights", len(cum), len(weights))
			}
			if !utils.IsSortedOrdered(cum) {
				return fmt.Sprintf("cumulative weights decrease: %v", cum)
			}
			return ""
		},
		gen.SliceOfN(8, gen.Float64Range(0, 5)),
		gen.Int64(),
	))

	properties.Property("no replacement emits each positively weighted slot exactly once", prop.ForAll(
		func(weights []float64, seed int64) string {
			positive := positiveCount(weights)
			if positive == 0 {
				return ""
			}
			c, err := buildIndexChoice(weights, seed, NoReplacement)
			if err != nil {
				return fmt.Sprintf("unexpected construction error: %v", err)
			}
			emitted, err := c.EmitMany(positive)
			if err != nil {
				return fmt.Sprintf("unexpected emission error: %v", err)
			}
			seen := make(map[int]struct{}, len(emitted))
			for _, v := range emitted {
				if v < 0 || v >= len(weights) {
					return fmt.Sprintf("out-of-range slot %d", v)
				}
				if weights[v] <= 0 {
					return fmt.Sprintf("zero-weight slot %d emitted", v)
				}
				if _, ok := seen[v]; ok {
					return fmt.Sprintf("slot %d emitted twice", v)
				}
				seen[v] = struct{}{}
			}
			if _, err := c.Emit(); !errors.Is(err, emitter.ErrInsufficientUnique) {
				return fmt.Sprintf("expected exhaustion, got %v", err)
			}
			return ""
		},
		gen.SliceOfN(9, gen.Float64Range(0, 3)),
		gen.Int64(),
	))

	return properties
}

// buildIndexChoice emits slot indices directly, so the properties can check
// weights and ranges by value.
func buildIndexChoice(weights []float64, seed int64, policy Policy) (*Choice[int], error) {
	items := make([]int, len(weights))
	for i := range items {
		items[i] = i
	}
	return New(items, WithWeights(weights...), WithPolicy(policy), WithSeed(seed))
}

func positiveCount(weights []float64) int {
	positive := 0
	for _, w := range weights {
		if w > 0 {
			positive++
		}
	}
	return positive
}

func checkTwinAgreement(weights []float64, seed int64, ops []int, policy Policy) string {
	a, errA := buildIndexChoice(weights, seed, policy)
	b, errB := buildIndexChoice(weights, seed, policy)
	if (errA == nil) != (errB == nil) {
		return fmt.Sprintf("construction disagreement: %v vs %v", errA, errB)
	}
	if errA != nil {
		// Both reject the same way; nothing further to compare.
		return ""
	}
	for i, op := range ops {
		outA, errA := applyOp(a, op)
		outB, errB := applyOp(b, op)
		switch {
		case (errA == nil) != (errB == nil),
			errA != nil && errA.Error() != errB.Error():
			return fmt.Sprintf("op %d error disagreement: %v vs %v", i, errA, errB)
		case !reflect.DeepEqual(outA, outB):
			return fmt.Sprintf("op %d output disagreement: %v vs %v", i, outA, outB)
		}
	}
	return ""
}

func applyOp(c *Choice[int], op int) ([]int, error) {
	switch {
	case op == 0:
		c.Reset()
		return nil, nil
	case op%3 == 0:
		v, err := c.Emit()
		if err != nil {
			return nil, err
		}
		return []int{v}, nil
	default:
		return c.EmitMany(1 + op%4)
	}
}
