// Package evaluate builds evaluation chunks: assets that load a bundle and execute its entries in order.
package evaluate

import (
	"context"
	"errors"
	"slices"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.EvaluateChunkingContext = (*Context)(nil)

// Context implements ports.EvaluateChunkingContext on top of an environment strategy.
// Every operation is memoized.
type Context struct {
	strategy ports.EvaluationStrategy
	memo     ports.Memoizer
	tracer   ports.Tracer
}

// NewContext creates a Context rendering through strategy.
func NewContext(strategy ports.EvaluationStrategy, memo ports.Memoizer, tracer ports.Tracer) *Context {
	return &Context{
		strategy: strategy,
		memo:     memo,
		tracer:   tracer,
	}
}

// Environment returns the target environment of the strategy.
func (c *Context) Environment() domain.Environment {
	return c.strategy.Environment()
}

// Chunk places assets into a chunk named name.
func (c *Context) Chunk(ctx context.Context, name string, assets []domain.ChunkableAsset) (domain.Chunk, error) {
	key := chunkKey(c.Environment(), name, assets)
	return ports.Memo(ctx, c.memo, key, func(ctx context.Context) (domain.Chunk, error) {
		ctx, span := c.tracer.Start(ctx, "chunk",
			ports.WithAttribute("chunk", name),
			ports.WithAttribute("assets", len(assets)),
		)
		defer span.End()

		chunk, err := c.strategy.Chunk(ctx, name, assets)
		if err != nil {
			span.RecordError(err)
			return nil, asConstructionError(err, name)
		}
		return chunk, nil
	})
}

// EvaluateChunk returns one asset that loads entryChunk and otherAssets and executes entries in order.
func (c *Context) EvaluateChunk(
	ctx context.Context,
	entryChunk domain.Chunk,
	otherAssets []domain.Asset,
	entries *domain.EvaluatedEntries,
) (domain.Asset, error) {
	if entryChunk == nil {
		return nil, zerr.Wrap(domain.ErrChunkConstruction, "entry chunk is missing")
	}

	pool := canonicalPool(otherAssets)
	key := evaluationKey(c.Environment(), entryChunk, entries, pool)

	return ports.Memo(ctx, c.memo, key, func(ctx context.Context) (domain.Asset, error) {
		return c.evaluate(ctx, entryChunk, pool, entries)
	})
}

func (c *Context) evaluate(
	ctx context.Context,
	entryChunk domain.Chunk,
	pool []domain.Asset,
	entries *domain.EvaluatedEntries,
) (domain.Asset, error) {
	ctx, span := c.tracer.Start(ctx, "evaluate",
		ports.WithAttribute("chunk", entryChunk.Ident().String()),
		ports.WithAttribute("entries", entries.Len()),
		ports.WithAttribute("pool", len(pool)),
	)
	defer span.End()

	resolved, err := resolveEntries(ctx, entries)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	order := identsOf(resolved)
	ident := Identity(entryChunk.Ident(), order, identsOf(pool), c.strategy.Extension())
	span.SetAttribute("ident", ident.String())

	plan := &domain.EvaluationPlan{
		Ident:   ident,
		Chunk:   entryChunk,
		Entries: resolved,
		Pool:    pool,
	}

	evaluation, err := c.strategy.RenderEvaluation(ctx, plan)
	if err != nil {
		span.RecordError(err)
		return nil, asConstructionError(err, ident.String())
	}

	if err := verify(plan, order, &evaluation); err != nil {
		span.RecordError(err)
		return nil, err
	}

	return domain.NewGeneratedAsset(ident, evaluation.Content, evaluation.References), nil
}

// resolveEntries resolves every entry concurrently and returns them in stored order.
func resolveEntries(ctx context.Context, entries *domain.EvaluatedEntries) ([]domain.EvaluatedEntry, error) {
	resolved := make([]domain.EvaluatedEntry, entries.Len())

	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range entries.All() {
		g.Go(func() error {
			entry, err := ref.Resolve(gctx)
			if err != nil {
				err = zerr.With(errors.Join(domain.ErrUnresolvedEntry, err), "index", i)
				return zerr.With(err, "entry", ref.Key())
			}
			resolved[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}

// verify checks that the rendered evaluation reaches every input and keeps entry order.
func verify(plan *domain.EvaluationPlan, order []domain.Ident, evaluation *domain.Evaluation) error {
	required := make([]domain.Ident, 0, len(plan.Pool)+1)
	required = append(required, plan.Chunk.Ident())
	required = append(required, identsOf(plan.Pool)...)

	for _, id := range required {
		if !slices.Contains(evaluation.References, id) {
			err := zerr.With(errors.Join(domain.ErrChunkConstruction, domain.ErrAssetUnreachable), "asset", id.String())
			return zerr.With(err, "evaluation", plan.Ident.String())
		}
	}

	if !slices.Equal(evaluation.Order, order) {
		err := zerr.With(errors.Join(domain.ErrChunkConstruction, domain.ErrEvaluationOrder), "evaluation", plan.Ident.String())
		return zerr.With(err, "emitted", joinIdents(evaluation.Order))
	}
	return nil
}

// canonicalPool sorts assets by identity and drops repeated identities.
func canonicalPool(assets []domain.Asset) []domain.Asset {
	pool := make([]domain.Asset, 0, len(assets))
	for _, a := range assets {
		if a != nil {
			pool = append(pool, a)
		}
	}
	slices.SortStableFunc(pool, func(a, b domain.Asset) int {
		return a.Ident().Compare(b.Ident())
	})
	return slices.CompactFunc(pool, func(a, b domain.Asset) bool {
		return a.Ident() == b.Ident()
	})
}

func identsOf[T domain.Asset](assets []T) []domain.Ident {
	ids := make([]domain.Ident, len(assets))
	for i, a := range assets {
		ids[i] = a.Ident()
	}
	return ids
}

func asConstructionError(err error, subject string) error {
	if !errors.Is(err, domain.ErrChunkConstruction) {
		err = errors.Join(domain.ErrChunkConstruction, err)
	}
	return zerr.With(err, "chunk", subject)
}
