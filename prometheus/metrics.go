// Package prometheus records fetch metrics for a single invocation and
// writes them in the node_exporter textfile format, so scheduled runs can be
// monitored without a long-lived metrics endpoint.
package prometheus

import (
	"context"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/szmeku/silesiaai"
)

// Metrics holds the collectors of one run on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	FetchesTotal  *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec
	FetchBytes    *prometheus.CounterVec
}

// NewMetrics registers all collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		FetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "silesiaai_fetches_total",
				Help: "Total number of page fetches by host and result code.",
			},
			[]string{"host", "code"},
		),
		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "silesiaai_fetch_duration_seconds",
				Help:    "Duration of page fetches.",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"host"},
		),
		FetchBytes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "silesiaai_fetch_bytes_total",
				Help: "Bytes of markup returned by successful fetches.",
			},
			[]string{"host"},
		),
	}
}

// WriteTextfile writes the current metric values to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}

// Ensure Fetcher implements silesiaai.Fetcher at compile time.
var _ silesiaai.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a Fetcher and records every call.
type Fetcher struct {
	next    silesiaai.Fetcher
	metrics *Metrics
}

// NewFetcher creates a new Fetcher.
func NewFetcher(next silesiaai.Fetcher, m *Metrics) *Fetcher {
	return &Fetcher{next: next, metrics: m}
}

// Fetch delegates to the wrapped fetcher. Calls are labelled with the
// request host and the error code, "ok" on success.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (html string, err error) {
	host := hostOf(rawURL)
	defer func(begin time.Time) {
		code := "ok"
		if err != nil {
			code = silesiaai.ErrorCode(err)
		}
		f.metrics.FetchesTotal.WithLabelValues(host, code).Inc()
		f.metrics.FetchDuration.WithLabelValues(host).Observe(time.Since(begin).Seconds())
		if err == nil {
			f.metrics.FetchBytes.WithLabelValues(host).Add(float64(len(html)))
		}
	}(time.Now())
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return u.Hostname()
}
