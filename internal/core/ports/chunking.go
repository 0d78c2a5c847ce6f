package ports

import (
	"context"

	"go.trai.ch/stitch/internal/core/domain"
)

//go:generate mockgen -source=chunking.go -destination=mocks/mock_chunking.go -package=mocks

// ChunkingContext produces chunks for one target environment.
type ChunkingContext interface {
	// Environment returns the target environment.
	Environment() domain.Environment

	// Chunk places assets into a single chunk named name.
	// It fails with domain.ErrChunkConstruction if an asset cannot be placed.
	Chunk(ctx context.Context, name string, assets []domain.ChunkableAsset) (domain.Chunk, error)
}

// EvaluateChunkingContext is a ChunkingContext that can also produce evaluation chunks.
type EvaluateChunkingContext interface {
	ChunkingContext

	// EvaluateChunk returns one asset that, when loaded, executes every entry in stored order.
	// entryChunk is the primary bundled content. otherAssets is an unordered pool of supporting
	// assets that must all be reachable from the result.
	EvaluateChunk(
		ctx context.Context,
		entryChunk domain.Chunk,
		otherAssets []domain.Asset,
		entries *domain.EvaluatedEntries,
	) (domain.Asset, error)
}

// EvaluationStrategy is implemented by environment strategies.
// The evaluation engine resolves entries and derives identities; the strategy only renders.
type EvaluationStrategy interface {
	ChunkingContext

	// Extension returns the file extension of generated outputs, including the leading dot.
	Extension() string

	// RenderEvaluation renders a fully resolved plan.
	// The returned Evaluation must reference the chunk and every pool asset, and must list
	// entries in the order their executions are emitted.
	RenderEvaluation(ctx context.Context, plan *domain.EvaluationPlan) (domain.Evaluation, error)
}

// StrategyFactory creates the strategy for an environment.
type StrategyFactory interface {
	// New returns the strategy for env, or domain.ErrUnknownEnvironment.
	New(env domain.Environment) (EvaluationStrategy, error)
}
