package paging

import (
	"context"
	"io"

	"github.com/friendsofgo/errors"
	"github.com/sirupsen/logrus"
)

// Paginator runs the resolve, fetch and assemble pipeline for one entity type.
// It is immutable after construction and safe for concurrent use.
//
// Example usage:
//
//	artists := paging.NewPaginator("artist", sqlboiler.NewStore(queryArtists, "id"), artistID)
//
//	func (r *queryResolver) Artists(ctx context.Context, first, last *int, before, after *string) (*paging.Connection[*models.Artist], error) {
//	    return artists.Paginate(ctx, paging.NewPageArgs(first, last, before, after))
//	}
type Paginator[T any] struct {
	entityType string
	repo       Repository[T]
	id         IDFunc[T]
	page       PageConfig
	logger     logrus.FieldLogger
}

// NewPaginator creates a Paginator. entityType tags the edge cursors it emits.
func NewPaginator[T any](
	entityType string,
	repo Repository[T],
	id IDFunc[T],
	opts ...PaginateOption,
) *Paginator[T] {
	cfg := applyPaginateOptions(opts...)

	return &Paginator[T]{
		entityType: entityType,
		repo:       repo,
		id:         id,
		page:       cfg.page,
		logger:     cfg.logger.WithField("entity_type", entityType),
	}
}

// EntityType returns the type tag used for edge cursors.
func (p *Paginator[T]) EntityType() string {
	return p.entityType
}

// Paginate validates args, fetches the matching records and assembles the
// connection. Validation failures are returned as *ArgError or
// *PageSizeError before the repository is called.
func (p *Paginator[T]) Paginate(ctx context.Context, args PageArgs) (*Connection[T], error) {
	args = p.page.Apply(args)

	if err := p.page.Validate(args); err != nil {
		return nil, err
	}

	query, err := ResolveArgs(args)
	if err != nil {
		return nil, err
	}

	log := p.logger.WithFields(queryFields(query))
	log.Debug("fetching page")

	records, err := p.repo.Fetch(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch %s page", p.entityType)
	}

	conn := AssembleConnection(args, records, p.entityType, p.id)

	log.WithFields(logrus.Fields{
		"records":       len(records),
		"edges":         len(conn.Edges),
		"has_next_page": conn.PageInfo.HasNextPage,
	}).Debug("assembled page")

	return conn, nil
}

// Paginate is the one-shot form of Paginator.Paginate for callers that do
// not keep a Paginator around.
func Paginate[T any](
	ctx context.Context,
	repo Repository[T],
	args PageArgs,
	entityType string,
	id IDFunc[T],
	opts ...PaginateOption,
) (*Connection[T], error) {
	return NewPaginator(entityType, repo, id, opts...).Paginate(ctx, args)
}

func queryFields(query QueryDescriptor) logrus.Fields {
	fields := logrus.Fields{}
	if query.CursorRef != nil {
		fields["cursor_id"] = query.CursorRef.ID
	}
	if query.Limit.Valid {
		fields["limit"] = query.Limit.Int
	}
	if query.Skip.Valid {
		fields["skip"] = query.Skip.Int
	}
	return fields
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
