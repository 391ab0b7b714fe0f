package paging

import "fmt"

// Connection represents a Relay-compliant GraphQL connection.
// It provides both edges (with cursors) and nodes (direct access) to support
// different query patterns.
//
// Type parameter T is the domain model type (e.g., Artist, Album).
//
// Example GraphQL schema:
//
//	type ArtistConnection {
//	  edges: [ArtistEdge!]!
//	  nodes: [Artist!]!
//	  pageInfo: PageInfo!
//	}
type Connection[T any] struct {
	// Edges contains the list of edges, each with a cursor and node.
	Edges []Edge[T] `json:"edges"`

	// Nodes provides direct access to the items without cursor overhead.
	Nodes []T `json:"nodes"`

	PageInfo PageInfo `json:"pageInfo"`
}

// Edge represents a Relay-compliant edge in a connection.
//
// Example GraphQL schema:
//
//	type ArtistEdge {
//	  cursor: String!
//	  node: Artist!
//	}
type Edge[T any] struct {
	// Cursor is an opaque string that marks this item's position in the list.
	// Clients pass it back as `after` or `before` to resume pagination.
	Cursor string `json:"cursor"`

	Node T `json:"node"`
}

// BuildConnection creates a Connection from a slice of source items.
// It handles transformation from database models to domain models and
// generates a cursor for each item.
//
// Type parameters:
//   - From: Source type (e.g., SQLBoiler model, database row)
//   - To: Target type (e.g., domain model, GraphQL type)
//
// Returns the built Connection or an error if transformation fails.
//
// Example usage:
//
//	conn, err := paging.BuildConnection(
//	    dbRecords,
//	    pageInfo,
//	    func(i int, item *models.Artist) string {
//	        return paging.EncodeCursor("artist", item.ID)
//	    },
//	    toDomainArtist,
//	)
func BuildConnection[From any, To any](
	items []From,
	pageInfo PageInfo,
	cursorEncoder func(index int, item From) string,
	transform func(From) (To, error),
) (*Connection[To], error) {
	conn := &Connection[To]{
		Nodes:    make([]To, 0, len(items)),
		Edges:    make([]Edge[To], 0, len(items)),
		PageInfo: pageInfo,
	}

	for i, item := range items {
		transformed, err := transform(item)
		if err != nil {
			return nil, fmt.Errorf("transform item at index %d: %w", i, err)
		}

		cursor := cursorEncoder(i, item)
		conn.Nodes = append(conn.Nodes, transformed)
		conn.Edges = append(conn.Edges, Edge[To]{
			Cursor: cursor,
			Node:   transformed,
		})
	}

	return conn, nil
}

// AssembleConnection turns the records a Repository returned for
// ResolveArgs(args) into a Connection.
//
// When `first` was requested the repository was asked for first+1 records;
// if the extra peek record arrived, HasNextPage is true and the peek record
// is dropped. Every remaining record gets the cursor
// EncodeCursor(cursorType, id(record)).
func AssembleConnection[T any](
	args PageArgs,
	records []T,
	cursorType string,
	id IDFunc[T],
) *Connection[T] {
	conn, _ := AssembleConnectionAs(args, records, cursorType, id, func(item T) (T, error) {
		return item, nil
	})
	return conn
}

// AssembleConnectionAs is AssembleConnection with a transform from the stored
// record type to the node type exposed to clients. Cursors are computed from
// the stored record.
func AssembleConnectionAs[From any, To any](
	args PageArgs,
	records []From,
	cursorType string,
	id IDFunc[From],
	transform func(From) (To, error),
) (*Connection[To], error) {
	if cursorType == "" {
		cursorType = DefaultCursorType
	}

	hasNextPage := args.First.Valid && args.First.Int >= 0 && len(records) > args.First.Int
	if hasNextPage {
		records = records[:args.First.Int]
	}

	conn, err := BuildConnection(
		records,
		PageInfo{},
		func(_ int, item From) string {
			return EncodeCursor(cursorType, id(item))
		},
		transform,
	)
	if err != nil {
		return nil, err
	}

	conn.PageInfo = newPageInfo(args, conn.Edges, hasNextPage)
	return conn, nil
}
