package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the evaluation report HTTP handler
	EvaluationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "evaluation_report_latency_seconds",
		Help:    "Latency of the evaluation report endpoint",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of evaluation reports served
	EvaluationRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "evaluation_report_requests_total",
		Help: "Total evaluation reports served",
	})

	UsersEvaluated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "evaluation_users_evaluated_total",
		Help: "Total per-user summaries produced",
	})

	WatchTimeSamples = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "evaluation_watch_time_samples_total",
		Help: "Total predicted/actual watch time samples collected",
	})
)

func Init() {
	prometheus.MustRegister(
		EvaluationDuration,
		EvaluationRequests,
		UsersEvaluated,
		WatchTimeSamples,
	)
}
