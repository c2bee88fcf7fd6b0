package harvest

import (
	"context"

	"github.com/EVA666999/lenta-parser/internal/model"
	"github.com/EVA666999/lenta-parser/internal/obs"
)

// Strategy is one way of turning a target into enriched records. Two exist:
// inline brand resolution during pagination, and a concurrent per-item
// detail pass.
type Strategy interface {
	Harvest(ctx context.Context, target model.Target, required int) ([]model.Record, error)
}

// InlineBrandResolution resolves brands from the listing payload itself.
// Fast and sequential; the brand heuristic does the work when the listing
// carries no attributes.
type InlineBrandResolution struct {
	Collector *Collector
}

func (s *InlineBrandResolution) Harvest(ctx context.Context, target model.Target, required int) ([]model.Record, error) {
	items, err := s.Collector.Collect(ctx, target, required)
	if err != nil {
		return nil, err
	}
	records := s.Collector.Format(items)
	obs.ItemsHarvestedTotal.Add(float64(len(records)))
	return records, nil
}

// ConcurrentDetailLookup collects raw items first, then resolves brands
// from per-item detail responses across the enricher's worker pool. More
// accurate, one extra request per item.
type ConcurrentDetailLookup struct {
	Collector *Collector
	Enricher  *Enricher
}

func (s *ConcurrentDetailLookup) Harvest(ctx context.Context, target model.Target, required int) ([]model.Record, error) {
	items, err := s.Collector.Collect(ctx, target, required)
	if err != nil {
		return nil, err
	}
	records := s.Enricher.Enrich(ctx, items)
	obs.ItemsHarvestedTotal.Add(float64(len(records)))
	return records, nil
}
