package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(extractionsTotal) }

var extractionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "resume_extractions_total",
		Help: "Total resumes ingested, labeled by extraction quality verdict.",
	},
	[]string{"quality"}, // 'good', 'limited', 'poor'
)

func IncExtraction(quality string) {
	extractionsTotal.WithLabelValues(norm(quality)).Inc()
}
