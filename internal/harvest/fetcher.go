package harvest

import (
	"context"

	"github.com/EVA666999/lenta-parser/internal/model"
)

// ListingFetcher returns one page of raw items for a target. Implemented by
// the lenta client; tests substitute closures.
type ListingFetcher interface {
	FetchPage(ctx context.Context, target model.Target, cursor model.PageCursor) ([]model.RawItem, error)
}

// DetailFetcher returns the extended payload for one item.
type DetailFetcher interface {
	FetchDetail(ctx context.Context, itemID int64) (*model.RawItem, error)
}

// ListingFetcherFunc adapts a function to ListingFetcher.
type ListingFetcherFunc func(ctx context.Context, target model.Target, cursor model.PageCursor) ([]model.RawItem, error)

func (f ListingFetcherFunc) FetchPage(ctx context.Context, target model.Target, cursor model.PageCursor) ([]model.RawItem, error) {
	return f(ctx, target, cursor)
}

// DetailFetcherFunc adapts a function to DetailFetcher.
type DetailFetcherFunc func(ctx context.Context, itemID int64) (*model.RawItem, error)

func (f DetailFetcherFunc) FetchDetail(ctx context.Context, itemID int64) (*model.RawItem, error) {
	return f(ctx, itemID)
}
