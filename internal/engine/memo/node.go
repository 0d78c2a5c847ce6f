package memo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/core/ports"
)

// NodeID is the unique identifier for the memo table Graft node.
const NodeID graft.ID = "engine.memo"

func init() {
	graft.Register(graft.Node[ports.Memoizer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Memoizer, error) {
			return NewTable(), nil
		},
	})
}
