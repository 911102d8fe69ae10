package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/telemetry"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, telemetry.NewOTelTracerFrom(tp, "test")
}

func TestOTelTracer_StartAttributes(t *testing.T) {
	sr, tracer := newRecorder(t)

	_, span := tracer.Start(context.Background(), "gateway.list",
		ports.WithAttribute("resource", domain.ResourceProducts),
		ports.WithAttribute("page", 2),
	)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "gateway.list", spans[0].Name())
	assert.ElementsMatch(t, []attribute.KeyValue{
		attribute.Int("page", 2),
		attribute.String("resource", "products"),
	}, spans[0].Attributes())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr, tracer := newRecorder(t)

	_, span := tracer.Start(context.Background(), "fetch")
	span.SetAttribute("key", "value")
	span.SetAttribute("count", int64(3))
	span.SetAttribute("generation", uint64(7))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("stale", true)
	span.SetAttribute("ids", []string{"a", "b"})
	span.SetAttribute("other", struct{ A int }{1})
	span.End()

	attrs := sr.Ended()[0].Attributes()
	assert.Contains(t, attrs, attribute.String("key", "value"))
	assert.Contains(t, attrs, attribute.Int64("count", 3))
	assert.Contains(t, attrs, attribute.Int64("generation", 7))
	assert.Contains(t, attrs, attribute.Float64("ratio", 0.5))
	assert.Contains(t, attrs, attribute.Bool("stale", true))
	assert.Contains(t, attrs, attribute.StringSlice("ids", []string{"a", "b"}))
	assert.Contains(t, attrs, attribute.String("other", "{1}"))
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tracer := newRecorder(t)

	_, span := tracer.Start(context.Background(), "fetch")
	span.RecordError(nil)
	span.RecordError(errors.New("connection refused"))
	span.End()

	got := sr.Ended()[0]
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "connection refused", got.Status().Description)
	require.Len(t, got.Events(), 1)
}

func TestOTelTracer_ParentChild(t *testing.T) {
	sr, tracer := newRecorder(t)

	ctx, parent := tracer.Start(context.Background(), "query.fetch")
	_, child := tracer.Start(ctx, "gateway.list")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, newCtx)
	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
