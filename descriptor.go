package paging

import (
	"math"

	"github.com/aarondl/null/v8"
)

// UnboundedBackwardLimit is the Limit ResolveArgs emits for a lone `before`:
// fetch every record preceding the cursor, with no page size.
const UnboundedBackwardLimit = math.MinInt

// CursorRef identifies the record a query is anchored on.
type CursorRef struct {
	ID string `json:"id"`
}

// QueryDescriptor is the store-agnostic query produced by ResolveArgs.
//
// Limit semantics:
//   - positive: take Limit records forward (already includes the +1 peek for `first`)
//   - negative: take |Limit| records backward from the cursor
//   - zero: take nothing
//   - UnboundedBackwardLimit: take every record before the cursor
//   - unset: no limit
//
// Skip is 1 whenever CursorRef is set, excluding the cursor's own record.
// Unset fields are omitted from JSON, so the empty descriptor encodes as {}.
type QueryDescriptor struct {
	CursorRef *CursorRef `json:"cursorRef,omitempty"`
	Limit     null.Int   `json:"limit,omitzero"`
	Skip      null.Int   `json:"skip,omitzero"`
}

// IsEmpty reports whether the descriptor applies no pagination at all.
func (d QueryDescriptor) IsEmpty() bool {
	return d.CursorRef == nil && !d.Limit.Valid && !d.Skip.Valid
}

// IsBackward reports whether records are taken backward from the cursor.
func (d QueryDescriptor) IsBackward() bool {
	return d.Limit.Valid && d.Limit.Int < 0
}

// IsUnbounded reports whether no record count applies to the query.
func (d QueryDescriptor) IsUnbounded() bool {
	return !d.Limit.Valid || d.Limit.Int == UnboundedBackwardLimit
}

// Take returns the number of records to fetch, regardless of direction.
// The boolean is false when the query is unbounded.
func (d QueryDescriptor) Take() (int, bool) {
	if d.IsUnbounded() {
		return 0, false
	}

	if d.Limit.Int < 0 {
		return -d.Limit.Int, true
	}
	return d.Limit.Int, true
}

// SkipCount returns Skip, or 0 when unset.
func (d QueryDescriptor) SkipCount() int {
	if !d.Skip.Valid {
		return 0
	}
	return d.Skip.Int
}
