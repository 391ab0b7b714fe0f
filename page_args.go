package paging

import "github.com/aarondl/null/v8"

// PageArgs represents Relay connection arguments.
// Every field carries its own presence flag, so an explicit `first: 0`
// is distinguishable from an omitted `first`.
//
// At most one of First/Last and at most one of Before/After is honored.
// See ResolveArgs for the full set of accepted combinations.
type PageArgs struct {
	First  null.Int    `json:"first"`
	Last   null.Int    `json:"last"`
	Before null.String `json:"before"`
	After  null.String `json:"after"`
}

// WithFirst sets the forward page size and returns the args for chaining.
// If pa is nil, a new PageArgs is created.
//
// Example:
//
//	args := paging.WithAfter(paging.WithFirst(nil, 10), endCursor)
func WithFirst(pa *PageArgs, first int) *PageArgs {
	if pa == nil {
		pa = &PageArgs{}
	}

	pa.First = null.IntFrom(first)
	return pa
}

// WithLast sets the backward page size and returns the args for chaining.
// If pa is nil, a new PageArgs is created.
func WithLast(pa *PageArgs, last int) *PageArgs {
	if pa == nil {
		pa = &PageArgs{}
	}

	pa.Last = null.IntFrom(last)
	return pa
}

// WithAfter sets the forward cursor and returns the args for chaining.
// If pa is nil, a new PageArgs is created.
func WithAfter(pa *PageArgs, after string) *PageArgs {
	if pa == nil {
		pa = &PageArgs{}
	}

	pa.After = null.StringFrom(after)
	return pa
}

// WithBefore sets the backward cursor and returns the args for chaining.
// If pa is nil, a new PageArgs is created.
func WithBefore(pa *PageArgs, before string) *PageArgs {
	if pa == nil {
		pa = &PageArgs{}
	}

	pa.Before = null.StringFrom(before)
	return pa
}

// NewPageArgs builds PageArgs from the nullable pointers generated by
// GraphQL servers such as gqlgen, where an omitted argument arrives as nil.
func NewPageArgs(first, last *int, before, after *string) PageArgs {
	return PageArgs{
		First:  null.IntFromPtr(first),
		Last:   null.IntFromPtr(last),
		Before: null.StringFromPtr(before),
		After:  null.StringFromPtr(after),
	}
}

// IsEmpty reports whether no pagination argument is present.
func (pa PageArgs) IsEmpty() bool {
	return !pa.First.Valid && !pa.Last.Valid && !pa.Before.Valid && !pa.After.Valid
}

// GetFirst returns the requested forward page size, or nil when absent.
func (pa PageArgs) GetFirst() *int {
	return pa.First.Ptr()
}

// GetLast returns the requested backward page size, or nil when absent.
func (pa PageArgs) GetLast() *int {
	return pa.Last.Ptr()
}

// GetAfter returns the forward cursor, or nil when absent.
func (pa PageArgs) GetAfter() *string {
	return pa.After.Ptr()
}

// GetBefore returns the backward cursor, or nil when absent.
func (pa PageArgs) GetBefore() *string {
	return pa.Before.Ptr()
}
