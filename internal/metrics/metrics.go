package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service counters. All collectors are registered on
// the given registerer, so tests can pass a fresh registry.
type Metrics struct {
	OrdersPlaced    prometheus.Counter
	OrdersCancelled *prometheus.CounterVec
	MessagesSent    *prometheus.CounterVec
	HTTPRequests    *prometheus.CounterVec
}

// New creates and registers the service collectors.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "surplus",
			Name:      "orders_placed_total",
			Help:      "Number of orders placed through checkout.",
		}),
		OrdersCancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "surplus",
			Name:      "orders_cancelled_total",
			Help:      "Number of cancelled orders by actor.",
		}, []string{"actor"}),
		MessagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "surplus",
			Name:      "messages_sent_total",
			Help:      "Number of chat messages by sender role.",
		}, []string{"role"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "surplus",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
	}

	reg.MustRegister(m.OrdersPlaced, m.OrdersCancelled, m.MessagesSent, m.HTTPRequests)
	return m
}
