package telemetry

import (
	"context"
	"time"

	"go.trai.ch/repute/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// End does nothing.
func (s *NoOpSpan) End() {}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(_ error) {}

// SetAttribute does nothing.
func (s *NoOpSpan) SetAttribute(_ string, _ any) {}

// NoOpMetrics discards every cache and request observation.
type NoOpMetrics struct{}

// Hit does nothing.
func (NoOpMetrics) Hit() {}

// Miss does nothing.
func (NoOpMetrics) Miss() {}

// Expire does nothing.
func (NoOpMetrics) Expire() {}

// Store does nothing.
func (NoOpMetrics) Store() {}

// Evict does nothing.
func (NoOpMetrics) Evict(int) {}

// ObserveRequest does nothing.
func (NoOpMetrics) ObserveRequest(string, int, time.Duration) {}
