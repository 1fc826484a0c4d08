package log

import (
	"context"
	"sync"
)

// Tracer provides distributed tracing capabilities. This interface allows
// plugging in different tracing backends; the global tracer is NoOpTracer
// until SetTracer installs another, and under the "otel" build tag
// NewOTelTracer returns one backed by OpenTelemetry.
type Tracer interface {
	// StartSpan starts a new span with the given name. Returns a context
	// containing the span and a function to end the span.
	StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, SpanEnder)
}

// SpanEnder ends a span. Call with nil for success, or an error to mark the
// span as failed.
type SpanEnder func(err error)

// SpanOption configures span behavior.
type SpanOption func(*spanConfig)

type spanConfig struct {
	attributes map[string]interface{}
}

// WithAttributes sets span attributes.
func WithAttributes(attrs map[string]interface{}) SpanOption {
	return func(c *spanConfig) {
		c.attributes = attrs
	}
}

// NoOpTracer is a tracer that does nothing. The default when no tracer has
// been configured.
type NoOpTracer struct{}

// StartSpan returns the context unchanged and a no-op end function.
func (NoOpTracer) StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, SpanEnder) {
	return ctx, func(err error) {}
}

// Span names for the operations the top-level ciphersuite API traces.
const (
	SpanDeriveKeyPair = "hybridkem.derive_key_pair"
	SpanEncaps        = "hybridkem.encaps"
	SpanEncapsDerand  = "hybridkem.encaps_derand"
	SpanDecaps        = "hybridkem.decaps"
)

// --- Global Tracer ---

var (
	globalTracer   Tracer = NoOpTracer{}
	globalTracerMu sync.RWMutex
)

// SetTracer sets the global tracer.
func SetTracer(t Tracer) {
	globalTracerMu.Lock()
	defer globalTracerMu.Unlock()
	globalTracer = t
}

// GetTracer returns the global tracer.
func GetTracer() Tracer {
	globalTracerMu.RLock()
	defer globalTracerMu.RUnlock()
	return globalTracer
}

// StartSpan starts a span using the global tracer.
func StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, SpanEnder) {
	return GetTracer().StartSpan(ctx, name, opts...)
}
