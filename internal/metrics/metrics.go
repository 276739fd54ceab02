package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	APIRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_api_requests_total",
			Help: "Total number of requests sent to the recruitment backend.",
		},
		[]string{"operation", "status"},
	)
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bot_api_request_duration_seconds",
			Help:    "Duration of backend requests in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 15},
		},
		[]string{"operation"},
	)
	CandidateActionsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_candidate_actions_total",
			Help: "Total number of applied review actions.",
		},
		[]string{"action"},
	)
	ProfilesSharedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_profiles_shared_total",
			Help: "Total number of candidate profiles sent to clients by email.",
		},
	)
)

func StartMetricsServer(address string) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(APIRequestsCounter)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(CandidateActionsCounter)
	prometheus.MustRegister(ProfilesSharedCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(address, nil))
	}()
}
