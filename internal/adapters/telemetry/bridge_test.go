package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/telemetry"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnEnd_LogsSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got []any
	log.EXPECT().Debug("span finished", gomock.Any()).Do(func(_ string, args ...any) {
		got = args
	}).Times(1)

	tp := telemetry.NewProvider(telemetry.NewBridge(log))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracerFrom(tp, "test")
	_, span := tracer.Start(context.Background(), "gateway.delete", ports.WithAttribute("resource", "products"))
	span.RecordError(errors.New("not found"))
	span.End()

	require.GreaterOrEqual(t, len(got), 8)
	assert.Equal(t, "span", got[0])
	assert.Equal(t, "gateway.delete", got[1])
	assert.Equal(t, "duration", got[2])
	assert.Equal(t, "error", got[4])
	assert.Equal(t, "not found", got[5])
	assert.Equal(t, "resource", got[6])
	assert.Equal(t, "products", got[7])
}

func TestBridge_NilLogger(t *testing.T) {
	tp := telemetry.NewProvider(telemetry.NewBridge(nil))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := telemetry.NewOTelTracerFrom(tp, "test").Start(context.Background(), "noop")
	assert.NotPanics(t, span.End)
}

func TestBridge_FlushAndShutdown(t *testing.T) {
	b := telemetry.NewBridge(nil)
	assert.NoError(t, b.ForceFlush(context.Background()))
	assert.NoError(t, b.Shutdown(context.Background()))
}
