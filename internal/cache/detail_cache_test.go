package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EVA666999/lenta-parser/internal/harvest"
	"github.com/EVA666999/lenta-parser/internal/model"
)

// An unreachable redis must degrade to plain fetching, not break the
// detail strategy.
func TestFetchDetailDegradesWithoutRedis(t *testing.T) {
	fetches := 0
	next := harvest.DetailFetcherFunc(func(_ context.Context, itemID int64) (*model.RawItem, error) {
		fetches++
		return &model.RawItem{ID: itemID, Name: "Сок"}, nil
	})

	c := &DetailCache{
		Client: redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 100 * time.Millisecond,
			MaxRetries:  -1,
		}),
		TTL:  time.Minute,
		Next: next,
		Log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	item, err := c.FetchDetail(context.Background(), 5)
	if err != nil {
		t.Fatalf("FetchDetail() error: %v", err)
	}
	if item.ID != 5 || fetches != 1 {
		t.Errorf("item = %+v, fetches = %d", item, fetches)
	}
}
