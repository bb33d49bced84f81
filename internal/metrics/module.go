package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module provides the metrics registry and collectors via fx.
var Module = fx.Options(
	fx.Provide(newRegistry),
	fx.Provide(newMetrics),
)

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	return reg
}

type metricsParams struct {
	fx.In

	Registry *prometheus.Registry
}

func newMetrics(p metricsParams) *Metrics {
	return New(p.Registry)
}
