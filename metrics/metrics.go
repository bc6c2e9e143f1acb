// Package metrics exposes Prometheus instrumentation behind a small interface
// so services and middleware can be tested without a registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics defines the measurements the application records.
type Metrics interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
	ObserveUnitOfWork(operation string, committed bool)
	IncEventsPublished(eventType string)
	IncSnapshotExports(success bool)
}

var _ Metrics = (*Service)(nil)

type Service struct {
	RequestDuration *prometheus.HistogramVec
	UnitsOfWork     *prometheus.CounterVec
	EventsPublished *prometheus.CounterVec
	SnapshotExports *prometheus.CounterVec
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the collectors.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "esports_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route pattern and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		UnitsOfWork: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esports_units_of_work_total",
			Help: "Storage units of work by operation and outcome (committed or rolled_back).",
		}, []string{"operation", "outcome"}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esports_live_events_published_total",
			Help: "Live feed events pushed to websocket subscribers.",
		}, []string{"type"}),
		SnapshotExports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esports_snapshot_exports_total",
			Help: "Dashboard snapshot uploads by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		s.RequestDuration,
		s.UnitsOfWork,
		s.EventsPublished,
		s.SnapshotExports,
	)

	return s
}

func (s *Service) ObserveRequest(method, route string, status int, duration time.Duration) {
	s.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

func (s *Service) ObserveUnitOfWork(operation string, committed bool) {
	outcome := "committed"
	if !committed {
		outcome = "rolled_back"
	}
	s.UnitsOfWork.WithLabelValues(operation, outcome).Inc()
}

func (s *Service) IncEventsPublished(eventType string) {
	s.EventsPublished.WithLabelValues(eventType).Inc()
}

func (s *Service) IncSnapshotExports(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	s.SnapshotExports.WithLabelValues(result).Inc()
}
