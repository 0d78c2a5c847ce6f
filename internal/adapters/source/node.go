package source

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/memo" //nolint:depguard // Wired in engine wiring
)

// NodeID is the unique identifier for the asset source Graft node.
const NodeID graft.ID = "adapter.source"

func init() {
	graft.Register(graft.Node[ports.AssetSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{memo.NodeID},
		Run: func(ctx context.Context) (ports.AssetSource, error) {
			m, err := graft.Dep[ports.Memoizer](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(m), nil
		},
	})
}
