package harvest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/EVA666999/lenta-parser/internal/model"
)

// Collector walks the listing endpoint page by page until the required item
// count is satisfied or the source runs dry. Strictly sequential: one
// request in flight, a fixed delay between requests.
type Collector struct {
	Fetcher   ListingFetcher
	Brands    BrandExtractor
	PageLimit int
	Delay     time.Duration
	Log       *slog.Logger
}

// Collect gathers up to required raw items for the target. A transport
// failure aborts the whole collection and returns a nil slice; the caller
// logs it and moves on to the next target.
func (c *Collector) Collect(ctx context.Context, target model.Target, required int) ([]model.RawItem, error) {
	collected := make([]model.RawItem, 0, required)
	cursor := model.PageCursor{Offset: 0}

	for len(collected) < required {
		cursor.Limit = min(c.PageLimit, required-len(collected))
		c.Log.Info("requesting listing page",
			"city", target.City, "store_id", target.StoreID,
			"offset", cursor.Offset, "limit", cursor.Limit, "collected", len(collected))

		items, err := c.Fetcher.FetchPage(ctx, target, cursor)
		if err != nil {
			return nil, fmt.Errorf("listing page at offset %d: %w", cursor.Offset, err)
		}
		if len(items) == 0 {
			c.Log.Info("source exhausted", "city", target.City, "collected", len(collected))
			break
		}

		remaining := required - len(collected)
		if len(items) > remaining {
			collected = append(collected, items[:remaining]...)
		} else {
			collected = append(collected, items...)
		}
		if len(collected) >= required {
			break
		}

		// The offset advances by what the source returned, not by what we
		// consumed, so the next page starts after everything already seen.
		cursor.Offset += len(items)
		if err := sleep(ctx, c.Delay); err != nil {
			return nil, err
		}
	}

	if len(collected) > required {
		collected = collected[:required]
	}
	return collected, nil
}

// Format turns raw items into output records: kopecks become rubles, the
// brand comes from the extractor.
func (c *Collector) Format(items []model.RawItem) []model.Record {
	records := make([]model.Record, 0, len(items))
	for _, item := range items {
		records = append(records, model.Record{
			ID:           item.ID,
			Name:         item.Name,
			RegularPrice: model.Rubles(item.Prices.Regular),
			PromoPrice:   model.Rubles(item.Prices.Promo),
			Brand:        c.Brands.Extract(item),
		})
	}
	return records
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
