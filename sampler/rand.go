// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source produces the raw random stream consumed by every sampling function
// in this package. A Source is exclusively owned by the generator that
// created it; nothing here locks.
type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64

	// Seed reinitializes the generator's state from [seed]. The stream after
	// seeding depends only on [seed].
	Seed(seed uint64)
}

// NewSource returns a deterministic Source seeded with [seed].
//
// We don't use a cryptographically secure source of randomness here, as
// there's no need to ensure a truly random sampling.
func NewSource(seed int64) Source {
	source := prng.NewMT19937()
	source.Seed(uint64(seed))
	return source
}

// NewRandomSource returns a Source seeded once from [RandomSeed]. Its stream
// is not reproducible until the owner explicitly reseeds it.
func NewRandomSource() Source {
	return NewSource(RandomSeed())
}

// RandomSeed returns a seed drawn from the operating system's entropy pool.
// Only the seed is taken from the OS; the stream it seeds is still a
// deterministic pseudo-random stream.
func RandomSeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(b[:]))
}

// Uint64Inclusive returns a pseudo-random number in [0,n].
//
// Invariant: The results of this function are depended on by seeded fixture
// expectations, so any modifications are considered breaking.
func Uint64Inclusive(src Source, n uint64) uint64 {
	switch {
	// n+1 is power of two, so we can just mask
	//
	// Note: This does work for MaxUint64 as overflow is explicitly part of the
	// compiler specification: https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		return src.Uint64() & n

	// n is greater than MaxUint64/2 so we need to just iterate until we get a
	// number in the requested range.
	case n > math.MaxInt64:
		v := src.Uint64()
		for v > n {
			v = src.Uint64()
		}
		return v

	// n is less than MaxUint64/2 so we generate a number in the range
	// [0, k*(n+1)) where k is the largest integer such that k*(n+1) is less
	// than or equal to MaxUint64/2. We can't easily find k such that k*(n+1) is
	// less than or equal to MaxUint64 because the calculation would overflow.
	//
	// ref: https://github.com/golang/go/blob/ce10e9d84574112b224eae88dc4e0f43710808de/src/math/rand/rand.go#L127-L132
	default:
		maximum := uint64((1 << 63) - 1 - (1<<63)%(n+1))
		v := uint63(src)
		for v > maximum {
			v = uint63(src)
		}
		return v % (n + 1)
	}
}

// Float64 returns a pseudo-random number in [0,1).
func Float64(src Source) float64 {
	return float64(src.Uint64()>>11) / (1 << 53)
}

// uint63 returns a random number in [0, MaxInt64]
func uint63(src Source) uint64 {
	return src.Uint64() & math.MaxInt64
}
