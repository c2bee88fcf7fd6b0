// Package cache wraps the detail fetcher with a redis TTL cache so repeated
// detail lookups inside one run's window don't hit the API again.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EVA666999/lenta-parser/internal/harvest"
	"github.com/EVA666999/lenta-parser/internal/model"
)

type DetailCache struct {
	Client *redis.Client
	TTL    time.Duration
	Next   harvest.DetailFetcher
	Log    *slog.Logger
}

// FetchDetail serves from redis when possible, otherwise forwards to the
// underlying fetcher and stores the result. Cache failures are invisible to
// the caller: a broken redis degrades to plain fetching.
func (c *DetailCache) FetchDetail(ctx context.Context, itemID int64) (*model.RawItem, error) {
	key := fmt.Sprintf("lenta:item:%d", itemID)

	if val, err := c.Client.Get(ctx, key).Result(); err == nil {
		var item model.RawItem
		if json.Unmarshal([]byte(val), &item) == nil {
			return &item, nil
		}
	}

	item, err := c.Next.FetchDetail(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(item); err == nil {
		if err := c.Client.Set(ctx, key, b, c.TTL).Err(); err != nil {
			c.Log.Warn("detail cache write failed", "item_id", itemID, "err", err)
		}
	}
	return item, nil
}
