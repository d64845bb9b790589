package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.trai.ch/repute/internal/adapters/telemetry"
	"go.trai.ch/repute/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	bridge := telemetry.NewBridge(logger)

	logger.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "repute.api profile")
		assert.Contains(t, msg, "cache.hit=true")
	}).Times(1)

	tp := telemetry.NewTracerProvider(bridge)
	_, span := tp.Tracer("test").Start(context.Background(), "repute.api profile")
	span.SetAttributes(attribute.Bool("cache.hit", true))
	span.End()
}

func TestBridge_OnEndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	bridge := telemetry.NewBridge(logger)

	logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "error=timeout")
	}).Times(1)

	tp := telemetry.NewTracerProvider(bridge)
	_, span := tp.Tracer("test").Start(context.Background(), "repute.api scores")
	span.SetStatus(codes.Error, "timeout")
	span.End()
}

func TestBridge_NilLogger(_ *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tp := telemetry.NewTracerProvider(bridge)
	_, span := tp.Tracer("test").Start(context.Background(), "ignored")
	span.End()
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	bridge := telemetry.NewBridge(nil)

	assert.NoError(t, bridge.ForceFlush(context.Background()))
	assert.NoError(t, bridge.Shutdown(context.Background()))
}
