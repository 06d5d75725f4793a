package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/precomp/internal/adapters/telemetry"
	"go.trai.ch/precomp/internal/core/ports"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, telemetry.NewOTelTracerWithProvider(tp, "test")
}

func attrs(kvs []attribute.KeyValue) map[string]attribute.Value {
	out := make(map[string]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[string(kv.Key)] = kv.Value
	}
	return out
}

func TestOTelTracer_StartAppliesOptions(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "precomp.compile",
		ports.WithAttribute("source", "a.scss"),
		ports.WithAttribute("files", 3),
	)
	span.SetAttribute("compiled", true)
	span.SetAttribute("other", struct{}{})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "precomp.compile", ended[0].Name())

	got := attrs(ended[0].Attributes())
	assert.Equal(t, "a.scss", got["source"].AsString())
	assert.Equal(t, int64(3), got["files"].AsInt64())
	assert.True(t, got["compiled"].AsBool())
	assert.Equal(t, "{}", got["other"].AsString())
}

func TestOTelTracer_EmitPlan(t *testing.T) {
	sr, tracer := setupRecorder(t)

	// No span in context: nothing is recorded.
	tracer.EmitPlan(context.Background(), []string{"a.scss"})
	assert.Empty(t, sr.Ended())

	ctx, span := tracer.Start(context.Background(), "precomp.scan")
	tracer.EmitPlan(ctx, []string{"a.scss", "b.less"})
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	events := ended[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_emitted", events[0].Name)
	assert.Equal(t, []string{"a.scss", "b.less"}, attrs(events[0].Attributes)["sources"].AsStringSlice())
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr, tracer := setupRecorder(t)

	_, span := tracer.Start(context.Background(), "precomp.compile")
	span.RecordError(errors.New("boom"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "boom", ended[0].Status().Description)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	got, span := tracer.Start(ctx, "x", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, got)
	span.SetAttribute("k", 1)
	span.RecordError(errors.New("ignored"))
	span.End()
	tracer.EmitPlan(ctx, nil)
}
