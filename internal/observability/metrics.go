package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters for the flood detection service.
type Metrics struct {
	AssessmentsTotal  prometheus.Counter
	AreaScansTotal    prometheus.Counter
	ScanPointsSkipped prometheus.Counter
	ProviderErrors    prometheus.Counter

	AlertsDispatched *prometheus.CounterVec // labels: outcome={sent,failed}
	RouteQueries     *prometheus.CounterVec // labels: outcome={ok,provider_error}
}

func newMetrics() *Metrics {
	return &Metrics{
		AssessmentsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "floodwatch",
			Name:      "assessments_total",
			Help:      "Total single-point flood assessments computed.",
		}),
		AreaScansTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "floodwatch",
			Name:      "area_scans_total",
			Help:      "Total live area scans served.",
		}),
		ScanPointsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "floodwatch",
			Name:      "scan_points_skipped_total",
			Help:      "Grid points excluded from scans because the data source call failed.",
		}),
		ProviderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "floodwatch",
			Name:      "provider_errors_total",
			Help:      "Environmental data source failures.",
		}),
		AlertsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floodwatch",
			Name:      "alerts_dispatched_total",
			Help:      "Flood alert dispatch attempts by outcome.",
		}, []string{"outcome"}),
		RouteQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floodwatch",
			Name:      "route_queries_total",
			Help:      "Alternative-route queries by outcome.",
		}, []string{"outcome"}),
	}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.AssessmentsTotal,
		m.AreaScansTotal,
		m.ScanPointsSkipped,
		m.ProviderErrors,
		m.AlertsDispatched,
		m.RouteQueries,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
