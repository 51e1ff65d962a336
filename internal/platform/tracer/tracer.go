// Package tracer is a thin span abstraction over OpenTelemetry so the fraud
// case packages never import otel directly. NoopTracer backs tests;
// OTelTracer backs the server.
package tracer

import (
	"context"
	"time"
)

// Span is an active trace span. End must be called exactly once.
type Span interface {
	// End finishes the span and marks it failed when err is non-nil.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer starts spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key/value pair attached to a span or event.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute { return Attribute{Key: key, Value: value} }

func Bool(key string, value bool) Attribute { return Attribute{Key: key, Value: value} }

func Int(key string, value int) Attribute { return Attribute{Key: key, Value: value} }

// Duration records value in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names.
const (
	SpanCaseSubmit = "fraudcase.submit"
	SpanCaseCreate = "fraudcase.client.create_case"
)

// Attribute keys.
const (
	AttrOrderID       = "order_id"
	AttrCaseID        = "case_id"
	AttrHTTPStatus    = "http.status_code"
	AttrErrorCategory = "error.category"
	AttrHasCard       = "case.has_card"
	AttrHasRecipient  = "case.has_recipient"
)
