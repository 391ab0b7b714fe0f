// Package sqlboiler provides a SQLBoiler-backed paging.Repository.
//
// The Store turns a resolved QueryDescriptor into SQLBoiler query mods keyed
// on one unique column, runs them through a model query function and returns
// the rows in ascending key order, also for backward pages.
//
// Example usage:
//
//	artists := sqlboiler.NewStore(
//	    func(ctx context.Context, mods ...qm.QueryMod) ([]*models.Artist, error) {
//	        return models.Artists(mods...).All(ctx, db)
//	    },
//	    models.ArtistColumns.ID,
//	)
//
//	conn, err := paging.Paginate(ctx, artists, args, "artist", func(a *models.Artist) string { return a.ID })
package sqlboiler

import (
	"context"
	"slices"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/friendsofgo/errors"
	"github.com/nrfta/relay-paging"
)

// QueryFunc executes a SQLBoiler query and returns results.
//
// Type parameter T is the SQLBoiler model type (e.g., *models.Artist).
type QueryFunc[T any] func(ctx context.Context, mods ...qm.QueryMod) ([]T, error)

// Store implements paging.Repository[T] for SQLBoiler models.
type Store[T any] struct {
	queryFunc QueryFunc[T]
	key       string
	baseMods  []qm.QueryMod
}

// NewStore creates a Store paginating on the unique key column.
// baseMods (filters, joins, loads) are applied before the pagination mods.
func NewStore[T any](queryFunc QueryFunc[T], key string, baseMods ...qm.QueryMod) *Store[T] {
	return &Store[T]{
		queryFunc: queryFunc,
		key:       key,
		baseMods:  baseMods,
	}
}

// Fetch runs the query described by query. A zero limit returns no rows
// without touching the database.
func (s *Store[T]) Fetch(ctx context.Context, query paging.QueryDescriptor) ([]T, error) {
	if take, bounded := query.Take(); bounded && take == 0 {
		return []T{}, nil
	}

	mods := make([]qm.QueryMod, 0, len(s.baseMods)+4)
	mods = append(mods, s.baseMods...)
	mods = append(mods, DescriptorToQueryMods(s.key, query)...)

	rows, err := s.queryFunc(ctx, mods...)
	if err != nil {
		return nil, errors.Wrapf(err, "sqlboiler: query by %s", s.key)
	}

	if query.IsBackward() {
		slices.Reverse(rows)
	}

	return rows, nil
}
