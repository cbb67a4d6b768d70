// Package metrics exposes Prometheus collectors for store operations and
// outbound astronaut API calls.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/officerdemo/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "officerdemo"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	storeOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total number of officer store operations.",
		},
		[]string{"op", "outcome"},
	)

	storeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duration of officer store operations.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"op"},
	)

	astroCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "astro",
			Name:      "requests_total",
			Help:      "Total number of people-in-space API calls.",
		},
		[]string{"mode", "outcome"},
	)

	astroDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "astro",
			Name:      "request_duration_seconds",
			Help:      "Duration of people-in-space API calls.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
		},
		[]string{"mode"},
	)
)

func init() {
	Registry.MustRegister(
		storeOps,
		storeDuration,
		astroCalls,
		astroDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveStoreOp records one store operation. It is meant to be deferred
// with a pointer to the caller's named error result.
func ObserveStoreOp(op string, start time.Time, err *error) {
	storeOps.WithLabelValues(op, outcome(err)).Inc()
	storeDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// ObserveAstroCall records one astronaut API call made in the given mode
// ("raw", "typed" or "async").
func ObserveAstroCall(mode string, start time.Time, err *error) {
	astroCalls.WithLabelValues(mode, outcome(err)).Inc()
	astroDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
}

func outcome(errp *error) string {
	if errp == nil || *errp == nil {
		return "ok"
	}
	err := *errp
	switch {
	case errors.Is(err, common.ErrTimeout):
		return "timeout"
	case errors.Is(err, common.ErrDecode):
		return "decode_error"
	case errors.Is(err, common.ErrTransport):
		return "transport_error"
	case errors.Is(err, common.ErrStorage):
		return "storage_error"
	default:
		return "error"
	}
}
