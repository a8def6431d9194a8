package telemetry

import (
	"context"

	"go.trai.ch/pinfile/internal/core/ports"
)

var _ ports.Tracer = (*NoopTracer)(nil)

// NoopTracer implements ports.Tracer with no-op spans. It is the default
// when tracing is not enabled.
type NoopTracer struct{}

// NewNoop creates a new NoopTracer.
func NewNoop() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

// Shutdown does nothing.
func (t *NoopTracer) Shutdown(_ context.Context) error {
	return nil
}

type noopSpan struct{}

func (noopSpan) End()              {}
func (noopSpan) RecordError(error) {}
