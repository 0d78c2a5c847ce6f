package chunking

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/core/ports"
)

// NodeID is the unique identifier for the strategy factory Graft node.
const NodeID graft.ID = "adapter.chunking"

func init() {
	graft.Register(graft.Node[ports.StrategyFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.StrategyFactory, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(hasher), nil
		},
	})
}
