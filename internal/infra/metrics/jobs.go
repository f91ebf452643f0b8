package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(analysisJobsTotal) }

var analysisJobsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "analysis_jobs_processed_total",
		Help: "Total number of analysis jobs processed, labeled by terminal status.",
	},
	[]string{"status"}, // 'completed', 'failed'
)

func IncAnalysisJob(status string) {
	analysisJobsTotal.WithLabelValues(norm(status)).Inc()
}
