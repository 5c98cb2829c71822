package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	httpRequestDurationHistogram *prometheus.HistogramVec
	unstakeRequestCounter        *prometheus.CounterVec
	claimRequestCounter          *prometheus.CounterVec
	readinessTransitionCounter   prometheus.Counter
	activeSessionsGauge          prometheus.Gauge
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	go func() {
		metricsAddr := fmt.Sprintf(":%d", metricsPort)
		err := http.ListenAndServe(metricsAddr, metricsRouter)
		if err != nil {
			log.Fatal().Err(err).Msgf("error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"endpoint", "status"},
	)

	unstakeRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "unstake_requests_total",
			Help: "Total unstake requests by outcome and error kind.",
		},
		[]string{"outcome", "error_code"},
	)

	claimRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "claim_requests_total",
			Help: "Total claim requests by outcome and error kind.",
		},
		[]string{"outcome", "error_code"},
	)

	readinessTransitionCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "withdrawal_readiness_transitions_total",
			Help: "Total withdrawals that transitioned from pending to ready.",
		},
	)

	activeSessionsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions",
			Help: "Number of connected wallet sessions.",
		},
	)

	prometheus.MustRegister(
		httpRequestDurationHistogram,
		unstakeRequestCounter,
		claimRequestCounter,
		readinessTransitionCounter,
		activeSessionsGauge,
	)
}

// StartHttpRequestDurationTimer starts a timer to measure http request handling duration.
func StartHttpRequestDurationTimer(endpoint string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		httpRequestDurationHistogram.WithLabelValues(endpoint, fmt.Sprintf("%d", statusCode)).Observe(duration)
	}
}

func RecordUnstakeOutcome(outcome Outcome, errorCode string) {
	if unstakeRequestCounter != nil {
		unstakeRequestCounter.WithLabelValues(outcome.String(), errorCode).Inc()
	}
}

func RecordClaimOutcome(outcome Outcome, errorCode string) {
	if claimRequestCounter != nil {
		claimRequestCounter.WithLabelValues(outcome.String(), errorCode).Inc()
	}
}

func RecordReadinessTransitions(count int) {
	if readinessTransitionCounter != nil && count > 0 {
		readinessTransitionCounter.Add(float64(count))
	}
}

func SetActiveSessions(count int) {
	if activeSessionsGauge != nil {
		activeSessionsGauge.Set(float64(count))
	}
}
