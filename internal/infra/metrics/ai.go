package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(aiCallLatencyMs) }

var aiCallLatencyMs = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "analyzer_call_latency_ms",
		Help:    "Reasoning-service call latency distribution in milliseconds.",
		Buckets: []float64{100, 250, 500, 1000, 2500, 5000, 10000, 20000, 40000, 60000},
	},
	[]string{"provider", "success"},
)

func ObserveAnalyzerCall(provider string, latencyMs int64, success bool) {
	aiCallLatencyMs.WithLabelValues(norm(provider), strconv.FormatBool(success)).Observe(float64(latencyMs))
}
