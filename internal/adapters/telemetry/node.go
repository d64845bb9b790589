package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/repute/internal/core/ports"
)

const (
	// TracerNodeID is the unique identifier for the tracer Graft node.
	TracerNodeID graft.ID = "adapter.telemetry.tracer"
	// MetricsNodeID is the unique identifier for the Prometheus collector Graft node.
	MetricsNodeID graft.ID = "adapter.telemetry.metrics"
)

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewOTelTracer("repute"), nil
		},
	})

	graft.Register(graft.Node[*PrometheusCollector]{
		ID:        MetricsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*PrometheusCollector, error) {
			return NewPrometheusCollector(prometheus.NewRegistry())
		},
	})
}
