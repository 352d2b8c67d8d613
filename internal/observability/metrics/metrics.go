package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

func outcome(failure bool) Outcome {
	if failure {
		return Error
	}
	return Success
}

var defaultHistogramBucketsSeconds = []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30}

// Collectors exist from package init so recording before Init (tests, CLI
// one-shots) is a no-op on an unregistered collector rather than a nil deref.
var (
	once sync.Once

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"route", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_latency_seconds",
			Help:    "DB latency in seconds splitted by method and execution status",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	totalTransactionsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_total_transactions",
			Help: "Total number of ledger transactions",
		},
	)

	activeAddressesGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_active_addresses",
			Help: "Distinct native addresses that ever transacted",
		},
	)

	dailyTransactionsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_daily_transactions",
			Help: "Ledger transactions since local midnight",
		},
	)

	distributionGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ledger_transaction_distribution",
			Help: "Transactions per category",
		},
		[]string{"category"},
	)

	recentAddressCountGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_recent_address_count",
			Help: "Distinct native and evm addresses active in the last 24 hours",
		},
	)
)

// Init registers the collectors and serves them on metricsPort.
func Init(metricsPort int) {
	once.Do(func() {
		registerMetrics()
		initMetricsRouter(metricsPort)
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter := chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Info().Msgf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

func registerMetrics() {
	prometheus.MustRegister(
		httpRequestDurationHistogram,
		pollerDurationHistogram,
		dbLatency,
		totalTransactionsGauge,
		activeAddressesGauge,
		dailyTransactionsGauge,
		distributionGauge,
		recentAddressCountGauge,
	)
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	dbLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordHttpRequestDuration(d time.Duration, route string, statusCode int) {
	httpRequestDurationHistogram.WithLabelValues(route, strconv.Itoa(statusCode)).Observe(d.Seconds())
}

func RecordStatistics(totalTxs, activeAddrs, dailyTxs int64) {
	totalTransactionsGauge.Set(float64(totalTxs))
	activeAddressesGauge.Set(float64(activeAddrs))
	dailyTransactionsGauge.Set(float64(dailyTxs))
}

func RecordDistribution(transparent, privacy, prism, evmCompatible int64) {
	distributionGauge.WithLabelValues("transparent").Set(float64(transparent))
	distributionGauge.WithLabelValues("privacy").Set(float64(privacy))
	distributionGauge.WithLabelValues("prism").Set(float64(prism))
	distributionGauge.WithLabelValues("evm_compatible").Set(float64(evmCompatible))
}

func RecordRecentAddressCount(count int64) {
	recentAddressCountGauge.Set(float64(count))
}
