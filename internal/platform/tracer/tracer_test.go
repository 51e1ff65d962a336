package tracer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNoopTracer(t *testing.T) {
	ctx := context.Background()
	got, span := NewNoop().Start(ctx, SpanCaseSubmit, String(AttrOrderID, "1000123"))
	assert.Equal(t, ctx, got)
	require.NotNil(t, span)

	span.SetAttributes(Bool(AttrHasCard, true))
	span.AddEvent("retry.skipped")
	span.End(errors.New("boom"))
}

func TestOTelTracerWithInjectedTracer(t *testing.T) {
	tr := NewOTel(WithOTelTracer(noop.NewTracerProvider().Tracer("test")))
	_, span := tr.Start(context.Background(), SpanCaseCreate, Int(AttrHTTPStatus, 200))
	require.NotNil(t, span)
	span.SetAttributes(String(AttrCaseID, "abc123"))
	span.End(nil)
}

func TestNewOTelDefaultsToGlobalProvider(t *testing.T) {
	tr := NewOTel()
	require.NotNil(t, tr.tracer)
}

func TestToOTel(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, toOTel(nil))
	})

	t.Run("supported kinds", func(t *testing.T) {
		got := toOTel([]Attribute{
			String("s", "v"),
			Bool("b", true),
			Int("i", 3),
			Duration("d", 150*time.Millisecond),
			{Key: "f", Value: 0.5},
		})
		assert.Equal(t, []attribute.KeyValue{
			attribute.String("s", "v"),
			attribute.Bool("b", true),
			attribute.Int("i", 3),
			attribute.Int64("d", 150),
			attribute.Float64("f", 0.5),
		}, got)
	})

	t.Run("unsupported kinds are dropped", func(t *testing.T) {
		got := toOTel([]Attribute{{Key: "x", Value: struct{}{}}})
		assert.Empty(t, got)
	})
}
