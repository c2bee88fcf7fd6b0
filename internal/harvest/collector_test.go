package harvest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/EVA666999/lenta-parser/internal/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTarget() model.Target {
	return model.NewTarget("Москва", 1, 104, 2)
}

func makeItems(startID int64, n int) []model.RawItem {
	items := make([]model.RawItem, n)
	for i := range items {
		items[i] = model.RawItem{ID: startID + int64(i), Name: "item"}
	}
	return items
}

func TestCollectStopsWhenTargetCountReached(t *testing.T) {
	// Source serves pages of 3 regardless of the requested limit; needing 5
	// must take exactly 2 requests and the offset must advance by what the
	// source returned, not by what was consumed.
	var cursors []model.PageCursor
	fetcher := ListingFetcherFunc(func(_ context.Context, _ model.Target, cursor model.PageCursor) ([]model.RawItem, error) {
		cursors = append(cursors, cursor)
		if len(cursors) > 2 {
			return nil, nil
		}
		return makeItems(int64(cursor.Offset)+1, 3), nil
	})

	c := &Collector{Fetcher: fetcher, PageLimit: 3, Log: testLogger()}
	items, err := c.Collect(context.Background(), testTarget(), 5)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}

	if len(items) != 5 {
		t.Fatalf("collected %d items, want 5", len(items))
	}
	if len(cursors) != 2 {
		t.Fatalf("issued %d requests, want 2", len(cursors))
	}
	if cursors[0].Offset != 0 || cursors[1].Offset != 3 {
		t.Errorf("offsets = %d, %d; want 0, 3", cursors[0].Offset, cursors[1].Offset)
	}
	if cursors[0].Limit != 3 || cursors[1].Limit != 2 {
		t.Errorf("limits = %d, %d; want 3, 2", cursors[0].Limit, cursors[1].Limit)
	}
}

func TestCollectStopsOnExhaustedSource(t *testing.T) {
	calls := 0
	fetcher := ListingFetcherFunc(func(_ context.Context, _ model.Target, _ model.PageCursor) ([]model.RawItem, error) {
		calls++
		if calls == 1 {
			return makeItems(1, 4), nil
		}
		return nil, nil
	})

	c := &Collector{Fetcher: fetcher, PageLimit: 20, Log: testLogger()}
	items, err := c.Collect(context.Background(), testTarget(), 10)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(items) != 4 {
		t.Errorf("collected %d items, want 4", len(items))
	}
	if calls != 2 {
		t.Errorf("issued %d requests, want 2", calls)
	}
}

func TestCollectZeroRequired(t *testing.T) {
	fetcher := ListingFetcherFunc(func(_ context.Context, _ model.Target, _ model.PageCursor) ([]model.RawItem, error) {
		t.Fatal("no request expected when nothing is required")
		return nil, nil
	})

	c := &Collector{Fetcher: fetcher, PageLimit: 20, Log: testLogger()}
	items, err := c.Collect(context.Background(), testTarget(), 0)
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("collected %d items, want 0", len(items))
	}
}

func TestCollectAbortsOnTransportError(t *testing.T) {
	wantErr := errors.New("status 503")
	fetcher := ListingFetcherFunc(func(_ context.Context, _ model.Target, _ model.PageCursor) ([]model.RawItem, error) {
		return nil, wantErr
	})

	c := &Collector{Fetcher: fetcher, PageLimit: 20, Log: testLogger()}
	items, err := c.Collect(context.Background(), testTarget(), 10)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Collect() error = %v, want wrapped %v", err, wantErr)
	}
	if items != nil {
		t.Errorf("collected %d items on failure, want none", len(items))
	}
}

func TestFormatNormalizesPrices(t *testing.T) {
	c := &Collector{Brands: testExtractor(), Log: testLogger()}

	records := c.Format([]model.RawItem{
		{
			ID:     1,
			Name:   "COCA COLA Light",
			Prices: model.PriceBlock{Regular: 12999, Promo: 9999},
		},
	})

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.RegularPrice != 129.99 {
		t.Errorf("RegularPrice = %v, want 129.99", rec.RegularPrice)
	}
	if rec.PromoPrice != 99.99 {
		t.Errorf("PromoPrice = %v, want 99.99", rec.PromoPrice)
	}
	if rec.Brand != "COCA COLA" {
		t.Errorf("Brand = %q, want %q", rec.Brand, "COCA COLA")
	}
}
