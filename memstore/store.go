// Package memstore provides an in-memory paging.Repository over an ordered slice.
//
// It applies QueryDescriptor semantics the way a database adapter would, which
// makes it useful for fixtures, tests and small static collections.
//
// Example usage:
//
//	store := memstore.New(artists, func(a Artist) string { return a.ID })
//	conn, err := paging.Paginate(ctx, store, args, "artist", store.ID)
package memstore

import (
	"context"
	"slices"

	"github.com/nrfta/relay-paging"
)

// Store serves records in the order they were given.
// Identifiers must be unique; the Store never mutates its records.
type Store[T any] struct {
	records []T
	index   map[string]int
	id      paging.IDFunc[T]
}

// New creates a Store. records is copied; later changes to the caller's
// slice are not observed. On duplicate identifiers the first record wins.
func New[T any](records []T, id paging.IDFunc[T]) *Store[T] {
	s := &Store[T]{
		records: slices.Clone(records),
		index:   make(map[string]int, len(records)),
		id:      id,
	}

	for i, record := range s.records {
		key := id(record)
		if _, exists := s.index[key]; !exists {
			s.index[key] = i
		}
	}

	return s
}

// ID returns the identifier of record.
func (s *Store[T]) ID(record T) string {
	return s.id(record)
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	return len(s.records)
}

// Fetch returns the window of records selected by query, in stored order.
// A cursor that matches no record yields an empty result.
func (s *Store[T]) Fetch(ctx context.Context, query paging.QueryDescriptor) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	skip := query.SkipCount()
	take, bounded := query.Take()

	if query.IsBackward() {
		end := len(s.records)
		if query.CursorRef != nil {
			pos, ok := s.index[query.CursorRef.ID]
			if !ok {
				return []T{}, nil
			}
			end = pos + 1
		}

		end -= skip
		start := 0
		if bounded && take < end {
			start = end - take
		}
		return s.window(start, end), nil
	}

	start := 0
	if query.CursorRef != nil {
		pos, ok := s.index[query.CursorRef.ID]
		if !ok {
			return []T{}, nil
		}
		start = pos
	}

	start += skip
	end := len(s.records)
	if bounded && take < end-start {
		end = start + take
	}
	return s.window(start, end), nil
}

func (s *Store[T]) window(start, end int) []T {
	start = max(start, 0)
	end = min(end, len(s.records))
	if start >= end {
		return []T{}
	}
	return slices.Clone(s.records[start:end])
}
