package lmstudio

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// llmBuckets span 100ms to 2 minutes, the range local inference falls into.
var llmBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

var (
	upstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lmnode",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total number of requests sent to LM Studio",
		},
		[]string{"endpoint", "status"},
	)

	upstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lmnode",
			Subsystem: "upstream",
			Name:      "latency_seconds",
			Help:      "Latency of LM Studio requests in seconds",
			Buckets:   llmBuckets,
		},
		[]string{"endpoint"},
	)

	upstreamTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lmnode",
			Subsystem: "upstream",
			Name:      "tokens_total",
			Help:      "Tokens reported by LM Studio, by direction",
		},
		[]string{"direction"},
	)
)

func init() {
	prometheus.MustRegister(upstreamRequestsTotal, upstreamLatency, upstreamTokensTotal)
}

// observe records one upstream call. status is the HTTP code, or "error"
// when the transport failed before a response arrived.
func observe(endpoint string, code int, start time.Time) {
	status := "error"
	if code > 0 {
		status = strconv.Itoa(code)
	}
	upstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()
	upstreamLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

func observeUsage(u *Usage) {
	if u == nil {
		return
	}
	if u.PromptTokens > 0 {
		upstreamTokensTotal.WithLabelValues("input").Add(float64(u.PromptTokens))
	}
	if u.CompletionTokens > 0 {
		upstreamTokensTotal.WithLabelValues("output").Add(float64(u.CompletionTokens))
	}
}
