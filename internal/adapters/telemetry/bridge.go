package telemetry

import (
	"context"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/repute/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor and reports finished spans to a Logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing; spans are reported once they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the finished span with its attributes and duration.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	msg := FormatSpan(s)
	if s.Status().Code == codes.Error {
		b.logger.Warn(msg)
		return
	}
	b.logger.Info(msg)
}

// FormatSpan renders a finished span as one log line.
func FormatSpan(s sdktrace.ReadOnlySpan) string {
	parts := []string{s.Name()}

	attrs := make([]string, 0, len(s.Attributes()))
	for _, kv := range s.Attributes() {
		attrs = append(attrs, string(kv.Key)+"="+kv.Value.Emit())
	}
	sort.Strings(attrs)
	parts = append(parts, attrs...)

	parts = append(parts, s.EndTime().Sub(s.StartTime()).String())
	if s.Status().Code == codes.Error && s.Status().Description != "" {
		parts = append(parts, "error="+s.Status().Description)
	}
	return strings.Join(parts, " ")
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// NewTracerProvider returns a provider whose spans are reported through the bridge.
func NewTracerProvider(bridge *Bridge) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
}
