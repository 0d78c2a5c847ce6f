package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/cas"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stitch/internal/adapters/chunking"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stitch/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stitch/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stitch/internal/adapters/source"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stitch/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/memo"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			source.NodeID,
			chunking.NodeID,
			memo.NodeID,
			fs.EmitterNodeID,
			cas.NodeID,
			fs.HasherNodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			src, err := graft.Dep[ports.AssetSource](ctx)
			if err != nil {
				return nil, err
			}

			strategies, err := graft.Dep[ports.StrategyFactory](ctx)
			if err != nil {
				return nil, err
			}

			table, err := graft.Dep[ports.Memoizer](ctx)
			if err != nil {
				return nil, err
			}

			emitter, err := graft.Dep[ports.Emitter](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ArtifactStore](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(src, strategies, table, emitter, store, hasher, tracer, log), nil
		},
	})
}
