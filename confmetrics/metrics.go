// Package confmetrics instruments config.Config.ParseFrom with
// Prometheus counters and a histogram, and exposes them over HTTP for
// scraping.
package confmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	config "github.com/StormBytePP/StormByteConfig"
)

// Metrics holds the Prometheus collectors tracking parse activity.
type Metrics struct {
	parses        *prometheus.CounterVec
	parseDuration prometheus.Histogram
}

// New registers a fresh set of collectors against reg. Pass
// prometheus.DefaultRegisterer to expose them on the default registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		parses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stormbyteconfig_parses_total",
				Help: "Total number of ParseFrom calls, partitioned by outcome.",
			},
			[]string{"result"},
		),
		parseDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "stormbyteconfig_parse_duration_seconds",
				Help:    "Duration of ParseFrom calls in seconds.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// ParseFrom runs cfg.ParseFrom(source), recording its duration and
// outcome before returning the same error ParseFrom would.
func (m *Metrics) ParseFrom(cfg *config.Config, source string) error {
	timer := prometheus.NewTimer(m.parseDuration)
	err := cfg.ParseFrom(source)
	timer.ObserveDuration()

	result := "success"
	if err != nil {
		result = "error"
	}
	m.parses.WithLabelValues(result).Inc()
	return err
}

// Handler returns the HTTP handler that serves the registered metrics
// in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.Handler()
}
