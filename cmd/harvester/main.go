package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EVA666999/lenta-parser/internal/cache"
	"github.com/EVA666999/lenta-parser/internal/config"
	"github.com/EVA666999/lenta-parser/internal/db"
	"github.com/EVA666999/lenta-parser/internal/harvest"
	"github.com/EVA666999/lenta-parser/internal/lenta"
	"github.com/EVA666999/lenta-parser/internal/model"
	"github.com/EVA666999/lenta-parser/internal/obs"
	"github.com/EVA666999/lenta-parser/internal/repository"
	"github.com/EVA666999/lenta-parser/internal/sink"
)

// go run cmd/harvester/main.go -strategy=inline
// go run cmd/harvester/main.go -strategy=detail -count=50 -cities="Москва"
func main() {
	cfg := config.Load()

	strategyName := flag.String("strategy", cfg.Strategy, "enrichment strategy: 'inline' or 'detail'")
	count := flag.Int("count", cfg.ProductsPerRun, "products to harvest per city")
	citiesArg := flag.String("cities", "", "comma-separated cities (default: all configured)")
	flag.Parse()

	log := obs.NewLogger()
	obs.Start(cfg.MetricsPort)

	client := lenta.NewClient(lenta.Options{
		BaseURL:      cfg.BaseURL,
		Timeout:      cfg.RequestTimeout,
		UserAgent:    cfg.UserAgent,
		SessionToken: cfg.SessionToken,
		AuthToken:    cfg.AuthToken,
		DeviceID:     cfg.DeviceID,
	})

	brands := harvest.BrandExtractor{
		Alias:          cfg.BrandAlias,
		Name:           cfg.BrandName,
		MinTokenLength: cfg.MinBrandLength,
	}

	collector := &harvest.Collector{
		Fetcher:   client,
		Brands:    brands,
		PageLimit: cfg.PageLimit,
		Delay:     cfg.RequestDelay,
		Log:       log,
	}

	var detail harvest.DetailFetcher = client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Error("bad REDIS_URL", "err", err)
			os.Exit(1)
		}
		detail = &cache.DetailCache{
			Client: redis.NewClient(opt),
			TTL:    cfg.CacheTTL,
			Next:   client,
			Log:    log,
		}
	}

	enricher := &harvest.Enricher{
		Fetcher: detail,
		Brands:  brands,
		Workers: cfg.DetailWorkers,
		Log:     log,
	}

	ctx := context.Background()

	var recordRepo *repository.RecordRepository
	if cfg.DatabaseURL != "" {
		dbConn, err := db.New(cfg.DatabaseURL)
		if err != nil {
			log.Error("postgres unavailable, record sink disabled", "err", err)
		} else {
			recordRepo = &repository.RecordRepository{DB: dbConn}
		}

		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("pgx pool unavailable, raw-content sink disabled", "err", err)
		} else {
			defer pool.Close()
			contentRepo := &repository.ContentRepository{DB: pool}
			enricher.OnDetail = func(d model.RawItem) {
				text := harvest.ItemToText(d, brands.Extract(d))
				if err := contentRepo.Save(ctx, d.ID, text); err != nil {
					log.Warn("raw content save failed", "item_id", d.ID, "err", err)
				}
			}
		}
	}

	var strategy harvest.Strategy
	switch *strategyName {
	case config.StrategyInline:
		strategy = &harvest.InlineBrandResolution{Collector: collector}
	case config.StrategyDetail:
		strategy = &harvest.ConcurrentDetailLookup{Collector: collector, Enricher: enricher}
	default:
		log.Error("unknown strategy", "strategy", *strategyName)
		os.Exit(1)
	}

	// A single bound drives both the collector target and the writer cap.
	writer := &sink.CSVWriter{Dir: cfg.OutputDir, MaxRecords: *count, Log: log}

	cities := cfg.Cities()
	if *citiesArg != "" {
		cities = strings.Split(*citiesArg, ",")
		for i := range cities {
			cities[i] = strings.TrimSpace(cities[i])
		}
	}

	// One city failing must not stop the others.
	for _, city := range cities {
		if err := harvestCity(ctx, cfg, strategy, writer, recordRepo, log, city, *count); err != nil {
			log.Error("city failed", "city", city, "err", err)
		}
	}

	log.Info("harvester finished")
}

func harvestCity(
	ctx context.Context,
	cfg *config.Config,
	strategy harvest.Strategy,
	writer *sink.CSVWriter,
	recordRepo *repository.RecordRepository,
	log *slog.Logger,
	city string,
	count int,
) error {
	target, err := cfg.Target(city)
	if err != nil {
		return err
	}
	log.Info("harvest started", "city", city, "store", target.StoreTitle)

	start := time.Now()
	records, err := strategy.Harvest(ctx, target, count)
	if err != nil {
		return err
	}
	log.Info("harvest finished", "city", city, "records", len(records), "took", time.Since(start).String())

	name := fmt.Sprintf("lenta_%s.csv", strings.ToLower(strings.ReplaceAll(city, " ", "_")))
	if err := writer.WriteRecords(name, records); err != nil {
		return err
	}

	if recordRepo != nil {
		if err := recordRepo.SaveAll(city, records); err != nil {
			log.Error("postgres save failed", "city", city, "err", err)
		}
	}
	return nil
}
