package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/EVA666999/lenta-parser/internal/config"
	"github.com/EVA666999/lenta-parser/internal/lenta"
	"github.com/EVA666999/lenta-parser/internal/model"
	"github.com/EVA666999/lenta-parser/internal/obs"
	"github.com/EVA666999/lenta-parser/internal/sink"
)

// go run cmd/stores/main.go
func main() {
	cfg := config.Load()
	flag.Parse()

	log := obs.NewLogger()

	client := lenta.NewClient(lenta.Options{
		BaseURL:      cfg.BaseURL,
		Timeout:      cfg.RequestTimeout,
		UserAgent:    cfg.UserAgent,
		SessionToken: cfg.SessionToken,
		AuthToken:    cfg.AuthToken,
		DeviceID:     cfg.DeviceID,
	})

	ctx := context.Background()
	var all []model.Store

	for _, city := range cfg.Cities() {
		target, err := cfg.Target(city)
		if err != nil {
			log.Error("city skipped", "city", city, "err", err)
			continue
		}
		log.Info("fetching stores", "city", city, "region_id", target.RegionID)

		count := 0
		for page := 1; ; page++ {
			stores, err := client.SearchStores(ctx, target.RegionID, page, cfg.StorePageSize)
			if err != nil {
				log.Error("store search failed", "city", city, "page", page, "err", err)
				break
			}
			if len(stores) == 0 {
				break
			}
			for i := range stores {
				stores[i].City = city
			}
			all = append(all, stores...)
			count += len(stores)
		}
		log.Info("stores fetched", "city", city, "count", count)
	}

	writer := &sink.CSVWriter{Dir: cfg.OutputDir, Log: log}
	name := fmt.Sprintf("lenta_stores_%s.csv", time.Now().Format("20060102_150405"))
	if err := writer.WriteStores(name, all); err != nil {
		log.Error("store export failed", "err", err)
	}
}
