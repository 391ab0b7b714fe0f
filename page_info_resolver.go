package paging

import (
	"context"
)

// PageInfoResolver interface
type PageInfoResolver interface {
	HasPreviousPage(ctx context.Context, pageInfo *PageInfo) (bool, error)
	HasNextPage(ctx context.Context, pageInfo *PageInfo) (bool, error)
	StartCursor(ctx context.Context, pageInfo *PageInfo) (*string, error)
	EndCursor(ctx context.Context, pageInfo *PageInfo) (*string, error)
}

type pageInfoResolver struct{}

// NewPageInfoResolver returns the resolver for PageInfo.
// A nil PageInfo resolves like NewEmptyPageInfo.
func NewPageInfoResolver() PageInfoResolver {
	return &pageInfoResolver{}
}

func (r *pageInfoResolver) HasPreviousPage(ctx context.Context, pageInfo *PageInfo) (bool, error) {
	return orEmpty(pageInfo).HasPreviousPage, nil
}

func (r *pageInfoResolver) HasNextPage(ctx context.Context, pageInfo *PageInfo) (bool, error) {
	return orEmpty(pageInfo).HasNextPage, nil
}

func (r *pageInfoResolver) StartCursor(ctx context.Context, pageInfo *PageInfo) (*string, error) {
	return orEmpty(pageInfo).StartCursor, nil
}

func (r *pageInfoResolver) EndCursor(ctx context.Context, pageInfo *PageInfo) (*string, error) {
	return orEmpty(pageInfo).EndCursor, nil
}

func orEmpty(pageInfo *PageInfo) *PageInfo {
	if pageInfo == nil {
		return NewEmptyPageInfo()
	}
	return pageInfo
}
