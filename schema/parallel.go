// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package schema

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/datagen/emitter"
)

var (
	// ErrNilBuilder is returned when GenerateParallel is given no schema
	// builder.
	ErrNilBuilder = errors.New("schema builder must not be nil")

	// ErrNoWorkers is returned for worker counts that are not positive
	// integers.
	ErrNoWorkers = errors.New("worker count must be a positive integer")
)

// GenerateParallel produces [count] records across [workers] goroutines.
//
// Each worker builds its own schema with [build] and walks a contiguous
// span of record indexes, reseeding with baseSeed plus the index before
// every record. Records therefore depend only on (baseSeed, index): the
// output is identical for any worker count and any scheduling.
//
// The per-record reseed means state never carries across records, so
// no-replacement pools and cycling emitters restart every record. Fields
// that must stay unique across records belong in a serial GenerateMany.
func GenerateParallel(
	build func() (*Schema, error),
	baseSeed int64,
	count int,
	workers int,
) ([]map[string]any, error) {
	if build == nil {
		return nil, ErrNilBuilder
	}
	if count < 1 {
		return nil, emitter.ErrInvalidCount
	}
	if workers < 1 {
		return nil, ErrNoWorkers
	}
	if workers > count {
		workers = count
	}

	records := make([]map[string]any, count)
	eg := &errgroup.Group{}
	for w := 0; w < workers; w++ {
		start := w * count / workers
		end := (w + 1) * count / workers
		if start == end {
			continue
		}
		eg.Go(func() error {
			s, err := build()
			if err != nil {
				return err
			}
			// Spans are disjoint, so the workers write to distinct slots.
			for i := start; i < end; i++ {
				s.Seed(baseSeed + int64(i))
				record, err := s.Generate()
				if err != nil {
					return err
				}
				records[i] = record
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
