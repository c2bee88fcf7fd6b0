package harvest

import (
	"context"
	"log/slog"
	"sync"

	"github.com/EVA666999/lenta-parser/internal/model"
	"github.com/EVA666999/lenta-parser/internal/obs"
)

// Enricher resolves brands through per-item detail lookups, fanned out over
// a fixed pool of workers. Output order follows completion order.
type Enricher struct {
	Fetcher DetailFetcher
	Brands  BrandExtractor
	Workers int
	Log     *slog.Logger

	// OnDetail, when set, receives every successfully fetched detail
	// payload. It is called from worker goroutines and must be safe for
	// concurrent use.
	OnDetail func(detail model.RawItem)
}

// Enrich produces one record per input item that survives enrichment.
// Items without an id are dropped before dispatch; items whose detail fetch
// fails are dropped by their worker. Neither stops the pipeline.
func (e *Enricher) Enrich(ctx context.Context, items []model.RawItem) []model.Record {
	workers := e.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan model.RawItem)
	results := make(chan model.Record)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range jobs {
				if rec, ok := e.enrichOne(ctx, item); ok {
					results <- rec
				}
			}
		}()
	}

	go func() {
		for _, item := range items {
			if item.ID == 0 {
				e.Log.Warn("item without id dropped", "name", item.Name)
				obs.ItemsDroppedTotal.Inc()
				continue
			}
			jobs <- item
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	// The drain below is the single point where results are appended, so
	// workers never touch shared state directly.
	out := make([]model.Record, 0, len(items))
	for rec := range results {
		out = append(out, rec)
	}
	return out
}

func (e *Enricher) enrichOne(ctx context.Context, item model.RawItem) (model.Record, bool) {
	detail, err := e.Fetcher.FetchDetail(ctx, item.ID)
	if err != nil {
		e.Log.Error("detail fetch failed, item dropped", "item_id", item.ID, "err", err)
		obs.ItemsDroppedTotal.Inc()
		return model.Record{}, false
	}
	if e.OnDetail != nil {
		e.OnDetail(*detail)
	}

	return model.Record{
		ID:           item.ID,
		Name:         item.Name,
		RegularPrice: model.Rubles(item.Prices.Regular),
		PromoPrice:   model.Rubles(item.Prices.Promo),
		Brand:        e.Brands.Extract(*detail),
	}, true
}
