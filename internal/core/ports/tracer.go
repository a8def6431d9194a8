package ports

import "context"

// Span represents a single traced operation.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error against the span.
	RecordError(err error)
}

// Tracer defines the tracing interface for application operations.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start begins a new span with the given name.
	Start(ctx context.Context, name string) (context.Context, Span)
	// Shutdown flushes any pending spans and releases resources.
	Shutdown(ctx context.Context) error
}
