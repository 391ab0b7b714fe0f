package paging

import "context"

// Repository fetches records for one entity type.
// This interface allows paginators to work with SQLBoiler, an in-memory
// slice, or any other ordered store without being coupled to it.
//
// Type parameter T is the record type (e.g., *models.Artist).
//
// Contract:
//   - Records come back in a stable ascending order for a given descriptor,
//     also for backward (negative Limit) queries. Cursors depend on it.
//   - A CursorRef whose ID matches no record yields an empty result, not an error.
//   - Cancellation and timeouts follow ctx; paginators never retry.
type Repository[T any] interface {
	Fetch(ctx context.Context, query QueryDescriptor) ([]T, error)
}

// RepositoryFunc adapts a plain function to the Repository interface.
//
// Example:
//
//	repo := paging.RepositoryFunc[*models.Artist](func(ctx context.Context, q paging.QueryDescriptor) ([]*models.Artist, error) {
//	    return artistStore.Fetch(ctx, q)
//	})
type RepositoryFunc[T any] func(ctx context.Context, query QueryDescriptor) ([]T, error)

// Fetch calls f(ctx, query).
func (f RepositoryFunc[T]) Fetch(ctx context.Context, query QueryDescriptor) ([]T, error) {
	return f(ctx, query)
}

// IDFunc returns the opaque identifier that edge cursors encode for a record.
type IDFunc[T any] func(T) string
