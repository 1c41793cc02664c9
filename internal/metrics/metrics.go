// Package metrics exposes alerting and routing measurements to Prometheus.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Route sources reported by RouteComputed
const (
	SourceProvider = "provider"
	SourceFallback = "fallback"
)

// Collector holds the wildwatch metric families. A nil *Collector is valid
// and records nothing, so components can run without metrics wired.
type Collector struct {
	gatherer prometheus.Gatherer

	AlertsCreated     *prometheus.CounterVec
	AlertTransitions  *prometheus.CounterVec
	ResponseTime      prometheus.Histogram
	SLABreaches       prometheus.Counter
	RoutesComputed    *prometheus.CounterVec
	RouteComputeTime  prometheus.Histogram
	NotificationsSent prometheus.Counter
}

// NewCollector registers the metric families against reg. A nil registerer
// falls back to the Prometheus default registry.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	alertsCreated, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wildwatch_alerts_created_total",
		Help: "Alerts created from detections, by risk level.",
	}, []string{"risk"}), "wildwatch_alerts_created_total")
	if err != nil {
		return nil, err
	}

	transitions, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wildwatch_alert_transitions_total",
		Help: "Applied alert status transitions, by target status.",
	}, []string{"to"}), "wildwatch_alert_transitions_total")
	if err != nil {
		return nil, err
	}

	responseTime, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "wildwatch_response_time_seconds",
		Help:    "Seconds between detection and team dispatch.",
		Buckets: []float64{5, 10, 20, 30, 60, 120, 300, 600, 1800},
	}), "wildwatch_response_time_seconds")
	if err != nil {
		return nil, err
	}

	breaches, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wildwatch_sla_breaches_total",
		Help: "Dispatches that missed the response SLA.",
	}), "wildwatch_sla_breaches_total")
	if err != nil {
		return nil, err
	}

	routes, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wildwatch_routes_computed_total",
		Help: "Response routes computed, by source (provider or fallback).",
	}, []string{"source"}), "wildwatch_routes_computed_total")
	if err != nil {
		return nil, err
	}

	routeTime, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "wildwatch_route_computation_duration_seconds",
		Help:    "Duration of route computations including provider calls.",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}), "wildwatch_route_computation_duration_seconds")
	if err != nil {
		return nil, err
	}

	notifications, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "wildwatch_notifications_sent_total",
		Help: "Notifications published to recipient groups.",
	}), "wildwatch_notifications_sent_total")
	if err != nil {
		return nil, err
	}

	c := &Collector{
		gatherer:          gatherer,
		AlertsCreated:     alertsCreated,
		AlertTransitions:  transitions,
		ResponseTime:      responseTime,
		SLABreaches:       breaches,
		RoutesComputed:    routes,
		RouteComputeTime:  routeTime,
		NotificationsSent: notifications,
	}

	return c, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector
func (c *Collector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// AlertCreated counts a new alert at the given risk level
func (c *Collector) AlertCreated(risk string) {
	if c == nil {
		return
	}
	c.AlertsCreated.WithLabelValues(risk).Inc()
}

// Transition counts an applied status transition
func (c *Collector) Transition(to string) {
	if c == nil {
		return
	}
	c.AlertTransitions.WithLabelValues(to).Inc()
}

// Dispatched records a response time and whether it met the SLA
func (c *Collector) Dispatched(responseSeconds int, metSLA bool) {
	if c == nil {
		return
	}
	c.ResponseTime.Observe(float64(responseSeconds))
	if !metSLA {
		c.SLABreaches.Inc()
	}
}

// RouteComputed records where a route came from and how long it took
func (c *Collector) RouteComputed(source string, d time.Duration) {
	if c == nil {
		return
	}
	c.RoutesComputed.WithLabelValues(source).Inc()
	c.RouteComputeTime.Observe(d.Seconds())
}

// NotificationSent counts a published notification
func (c *Collector) NotificationSent() {
	if c == nil {
		return
	}
	c.NotificationsSent.Inc()
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
