package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream provider labels.
const (
	ProviderSERP    = "serp"
	ProviderSuggest = "suggest"
)

var (
	generationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seotitles_generations_total",
			Help: "Total title generation requests by outcome",
		},
		[]string{"outcome"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "seotitles_upstream_request_duration_seconds",
			Help:    "Latency of calls to the SERP and suggestion providers",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"provider", "outcome"},
	)

	extractedKeywords = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "seotitles_extracted_keywords",
			Help:    "Number of keywords extracted per generation",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry.
// Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(generationsTotal, upstreamDuration, extractedKeywords)
	})
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordGeneration counts a finished generation request.
func RecordGeneration(outcome string) {
	generationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveUpstream records the latency of one provider call.
func ObserveUpstream(provider string, err error, d time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	upstreamDuration.WithLabelValues(provider, outcome).Observe(d.Seconds())
}

// ObserveKeywords records how many keywords a generation produced.
func ObserveKeywords(n int) {
	extractedKeywords.Observe(float64(n))
}
