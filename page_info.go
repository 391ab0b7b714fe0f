package paging

// PageInfo contains metadata about a paginated result set, per the Relay
// Cursor Connections model. StartCursor and EndCursor are nil when the page
// has no edges.
type PageInfo struct {
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	StartCursor     *string `json:"startCursor"`
	EndCursor       *string `json:"endCursor"`
}

// NewEmptyPageInfo returns a empty instance of PageInfo. Useful for when working on a new page to be able to fullfil PageInfo requirements
func NewEmptyPageInfo() *PageInfo {
	return &PageInfo{}
}

// newPageInfo derives page boundaries from the edges actually returned.
//
// HasPreviousPage only reflects whether an `after` cursor was supplied; it
// does not check that records precede the cursor.
func newPageInfo[T any](args PageArgs, edges []Edge[T], hasNextPage bool) PageInfo {
	info := PageInfo{
		HasNextPage:     hasNextPage,
		HasPreviousPage: args.After.Valid,
	}

	if len(edges) > 0 {
		start := edges[0].Cursor
		end := edges[len(edges)-1].Cursor
		info.StartCursor = &start
		info.EndCursor = &end
	}

	return info
}
