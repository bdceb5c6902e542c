// SPDX-License-Identifier: MIT

// Package telemetry exports transform-graph activity as Prometheus metrics.
package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/framegraph/rigid"
	"github.com/katalvlaran/framegraph/tfgraph"
)

// Failure reasons used as the "reason" label.
const (
	ReasonNoPath    = "no_path"
	ReasonReentrant = "reentrant"
	ReasonInvalid   = "invalid_transform"
	ReasonOther     = "other"
)

// Metrics is a tfgraph.Observer backed by Prometheus collectors.
type Metrics struct {
	resolutions   *prometheus.CounterVec
	hops          prometheus.Histogram
	failures      *prometheus.CounterVec
	warnings      prometheus.Counter
	invalidations prometheus.Counter
}

var _ tfgraph.Observer = (*Metrics)(nil)

// New registers the framegraph collectors on reg. It panics if they are
// already registered there, like promauto does.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		resolutions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "framegraph_path_resolutions_total",
			Help: "Frame chains resolved, by cache outcome.",
		}, []string{"cache"}),
		hops: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "framegraph_path_hops",
			Help:    "Edges per resolved frame chain.",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "framegraph_query_failures_total",
			Help: "Failed transform queries, by reason.",
		}, []string{"reason"}),
		warnings: f.NewCounter(prometheus.CounterOpts{
			Name: "framegraph_validation_warnings_total",
			Help: "Invalid transforms repaired under the lenient policy.",
		}),
		invalidations: f.NewCounter(prometheus.CounterOpts{
			Name: "framegraph_cache_invalidations_total",
			Help: "Path cache flushes caused by graph mutations.",
		}),
	}
}

func (m *Metrics) PathResolved(hops int, cached bool) {
	label := "miss"
	if cached {
		label = "hit"
	}
	m.resolutions.WithLabelValues(label).Inc()
	m.hops.Observe(float64(hops))
}

func (m *Metrics) QueryFailed(err error) {
	m.failures.WithLabelValues(Reason(err)).Inc()
}

func (m *Metrics) ValidationWarning(_, _ string, _ error) { m.warnings.Inc() }

func (m *Metrics) CacheInvalidated() { m.invalidations.Inc() }

// Reason classifies a query error into a failure label.
func Reason(err error) string {
	switch {
	case errors.Is(err, tfgraph.ErrNoPath):
		return ReasonNoPath
	case errors.Is(err, tfgraph.ErrReentrantQuery):
		return ReasonReentrant
	case errors.Is(err, rigid.ErrInvalidTransform):
		return ReasonInvalid
	default:
		return ReasonOther
	}
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Serve runs srv until ctx is done, then shuts it down gracefully.
func Serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errc := make(chan error, 1)
	go func() {
		logger.Info("http listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("http shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
