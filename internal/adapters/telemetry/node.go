package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinfile/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

// TraceEnvVar enables OpenTelemetry tracing when set to a non-empty value.
const TraceEnvVar = "PINFILE_TRACE"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			if os.Getenv(TraceEnvVar) != "" {
				return NewOTelTracer("pinfile"), nil
			}
			return NewNoop(), nil
		},
	})
}
