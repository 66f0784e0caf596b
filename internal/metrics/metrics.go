// Package metrics exposes Prometheus instrumentation for the load cycle.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// LoadsTotal counts load cycles by outcome (success, failure).
	LoadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "unfdash",
		Name:      "loads_total",
		Help:      "Data load cycles by outcome",
	}, []string{"outcome"})

	// RecordsLoaded is the size of the current record set.
	RecordsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "unfdash",
		Name:      "records_loaded",
		Help:      "Records in the current set",
	})

	// LastRefreshTS is the unix time of the last successful load.
	LastRefreshTS = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "unfdash",
		Name:      "last_refresh_timestamp_seconds",
		Help:      "Unix time of the last successful load",
	})

	// UsingFallback is 1 while the sample dataset is being served.
	UsingFallback = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "unfdash",
		Name:      "using_fallback",
		Help:      "1 when serving the sample fallback dataset",
	})
)

// Handler returns the /metrics scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
