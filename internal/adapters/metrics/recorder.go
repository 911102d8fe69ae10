// Package metrics exposes the sync core's counters through Prometheus.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/zerr"
)

const namespace = "crmadmin"

// Recorder implements ports.Metrics on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	cacheReads         *prometheus.CounterVec
	gatewayCalls       *prometheus.CounterVec
	gatewayDuration    *prometheus.HistogramVec
	responsesDropped   *prometheus.CounterVec
	entriesInvalidated *prometheus.CounterVec
}

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		cacheReads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "reads_total",
			Help:      "Query reads by resource and result (hit, miss, shared).",
		}, []string{"resource", "result"}),
		gatewayCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "calls_total",
			Help:      "Gateway round trips by resource, operation and outcome.",
		}, []string{"resource", "op", "outcome"}),
		gatewayDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gateway",
			Name:      "call_duration_seconds",
			Help:      "Gateway round trip latency.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"resource", "op"}),
		responsesDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "responses_discarded_total",
			Help:      "Responses dropped because a newer fetch superseded them.",
		}, []string{"resource"}),
		entriesInvalidated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "entries_invalidated_total",
			Help:      "Cache entries marked stale by invalidation.",
		}, []string{"resource"}),
	}
}

// CacheRead counts a query read.
func (r *Recorder) CacheRead(res domain.Resource, result string) {
	r.cacheReads.WithLabelValues(string(res), result).Inc()
}

// GatewayCall records one gateway round trip.
func (r *Recorder) GatewayCall(res domain.Resource, op string, err error, elapsed time.Duration) {
	r.gatewayCalls.WithLabelValues(string(res), op, outcome(err)).Inc()
	r.gatewayDuration.WithLabelValues(string(res), op).Observe(elapsed.Seconds())
}

// ResponseDiscarded counts a late response.
func (r *Recorder) ResponseDiscarded(res domain.Resource) {
	r.responsesDropped.WithLabelValues(string(res)).Inc()
}

// Invalidated counts entries marked stale.
func (r *Recorder) Invalidated(res domain.Resource, entries int) {
	if entries <= 0 {
		return
	}
	r.entriesInvalidated.WithLabelValues(string(res)).Add(float64(entries))
}

// Registry returns the registry the collectors are registered on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes Handler on addr under /metrics until ctx is done.
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen for metrics"), "addr", addr)
	}

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return zerr.Wrap(err, "metrics server stopped")
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrApplicationFailure):
		return "application_error"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "transport_error"
	}
}

var _ ports.Metrics = (*Recorder)(nil)
