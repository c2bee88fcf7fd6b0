package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lenta_requests_total",
			Help: "API requests issued, by endpoint",
		},
		[]string{"endpoint"},
	)
	RequestErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lenta_request_errors_total",
			Help: "Failed API requests, by endpoint",
		},
		[]string{"endpoint"},
	)
	ItemsHarvestedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lenta_items_harvested_total",
			Help: "Records produced across all targets",
		},
	)
	ItemsDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "lenta_items_dropped_total",
			Help: "Items dropped during enrichment (missing id or failed detail fetch)",
		},
	)
)

// Start registers the harvest counters and serves /metrics in the background.
func Start(port string) {
	prometheus.MustRegister(RequestsTotal, RequestErrorsTotal, ItemsHarvestedTotal, ItemsDroppedTotal)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
