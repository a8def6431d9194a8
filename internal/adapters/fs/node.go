package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinfile/internal/adapters/logger"
	"go.trai.ch/pinfile/internal/core/ports"
)

// SourceNodeID is the unique identifier for the document source Graft node.
const SourceNodeID graft.ID = "adapter.document_source"

func init() {
	graft.Register(graft.Node[ports.DocumentSource]{
		ID:        SourceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DocumentSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(log), nil
		},
	})
}
