package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommend HTTP handler
	RecommendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommend endpoint",
		Buckets: prometheus.DefBuckets,
	})

	RecommendTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total recommend requests served",
	})

	// Requests whose hard constraints filtered out every laptop
	RecommendEmptyTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_empty_results_total",
		Help: "Recommend requests that matched no laptop",
	})

	RecommendResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_results_returned",
		Help:    "Result list size per recommend request",
		Buckets: prometheus.LinearBuckets(0, 1, 6),
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendDuration,
		RecommendTotal,
		RecommendEmptyTotal,
		RecommendResults,
	)
}
