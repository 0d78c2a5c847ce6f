// Package scheduler builds bundles in dependency order.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/evaluate"
	"go.trai.ch/zerr"
)

// BundleStatus represents the outcome of a bundle in a run.
type BundleStatus string

const (
	// StatusBuilt indicates the bundle produced new outputs.
	StatusBuilt BundleStatus = "built"
	// StatusUpToDate indicates every output already matched the previous build.
	StatusUpToDate BundleStatus = "up to date"
	// StatusFailed indicates the bundle failed to build.
	StatusFailed BundleStatus = "failed"
	// StatusSkipped indicates the bundle was not built because a dependency failed.
	StatusSkipped BundleStatus = "skipped"
)

// BundleResult describes one bundle of a run.
type BundleResult struct {
	Bundle     string
	Status     BundleStatus
	Evaluation string
	Chunk      string
	Written    int
	Outputs    []domain.OutputRecord
}

// Report lists the bundles of a run in planned order.
type Report struct {
	Bundles []BundleResult
}

// Scheduler builds the bundles of a project.
type Scheduler struct {
	source     ports.AssetSource
	strategies ports.StrategyFactory
	memo       ports.Memoizer
	emitter    ports.Emitter
	store      ports.ArtifactStore
	hasher     ports.Hasher
	tracer     ports.Tracer
	logger     ports.Logger

	mu       sync.Mutex
	contexts map[domain.Environment]*evaluate.Context
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(
	source ports.AssetSource,
	strategies ports.StrategyFactory,
	memo ports.Memoizer,
	emitter ports.Emitter,
	store ports.ArtifactStore,
	hasher ports.Hasher,
	tracer ports.Tracer,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		source:     source,
		strategies: strategies,
		memo:       memo,
		emitter:    emitter,
		store:      store,
		hasher:     hasher,
		tracer:     tracer,
		logger:     logger,
		contexts:   make(map[domain.Environment]*evaluate.Context),
	}
}

// Run builds the named bundles and everything they depend on, with at most parallelism
// bundles in flight. An empty targets list builds every bundle.
// The report is returned even when the run fails.
func (s *Scheduler) Run(
	ctx context.Context,
	project *domain.Project,
	targets []string,
	parallelism int,
) (*Report, error) {
	if err := project.Graph.Validate(); err != nil {
		return nil, err
	}

	ec, err := s.contextFor(project.Environment)
	if err != nil {
		return nil, err
	}

	selected, err := project.Graph.Closure(domain.NewIdents(targets))
	if err != nil {
		return nil, err
	}

	state := s.newRunState(ctx, project, ec, selected, max(parallelism, 1))
	s.tracer.EmitPlan(ctx, state.planned)

	err = state.runExecutionLoop()

	report := state.report()
	for _, res := range report.Bundles {
		if res.Status == StatusSkipped {
			s.logger.Warn(res.Bundle + ": skipped")
		}
	}
	return report, err
}

// contextFor returns the evaluation context of env, creating it on first use.
// Contexts are kept across runs so watch mode rebuilds reuse their memoized results.
func (s *Scheduler) contextFor(env domain.Environment) (*evaluate.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ec, ok := s.contexts[env]; ok {
		return ec, nil
	}

	strategy, err := s.strategies.New(env)
	if err != nil {
		return nil, err
	}

	ec := evaluate.NewContext(strategy, s.memo, s.tracer)
	s.contexts[env] = ec
	return ec, nil
}

type result struct {
	bundle domain.Ident
	res    BundleResult
	chunk  domain.Chunk
	err    error
}

type runState struct {
	ctx         context.Context
	s           *Scheduler
	project     *domain.Project
	ec          *evaluate.Context
	entries     *evaluate.Entries
	bundles     map[domain.Ident]domain.Bundle
	inDegree    map[domain.Ident]int
	ready       []domain.Ident
	active      int
	parallelism int
	resultsCh   chan result
	chunks      map[domain.Ident]domain.Chunk
	results     map[domain.Ident]BundleResult
	planned     []string
	errs        error
}

func (s *Scheduler) newRunState(
	ctx context.Context,
	project *domain.Project,
	ec *evaluate.Context,
	selected map[domain.Ident]struct{},
	parallelism int,
) *runState {
	state := &runState{
		ctx:         ctx,
		s:           s,
		project:     project,
		ec:          ec,
		entries:     evaluate.NewEntries(s.memo),
		bundles:     make(map[domain.Ident]domain.Bundle, len(selected)),
		inDegree:    make(map[domain.Ident]int, len(selected)),
		parallelism: parallelism,
		resultsCh:   make(chan result, parallelism),
		chunks:      make(map[domain.Ident]domain.Chunk, len(selected)),
		results:     make(map[domain.Ident]BundleResult, len(selected)),
	}

	// Walk yields dependencies first, so the ready queue starts in a stable order.
	for bundle := range project.Graph.Walk() {
		if _, ok := selected[bundle.Name]; !ok {
			continue
		}
		state.bundles[bundle.Name] = bundle
		state.inDegree[bundle.Name] = len(bundle.DependsOn)
		state.planned = append(state.planned, bundle.Name.String())
		if len(bundle.DependsOn) == 0 {
			state.ready = append(state.ready, bundle.Name)
		}
	}

	return state
}

func (state *runState) runExecutionLoop() error {
	for !state.isDone() {
		state.schedule()

		// Nothing in flight means the queue drained or the context was cancelled.
		if state.active == 0 {
			break
		}

		state.handleResult(<-state.resultsCh)
	}

	if err := state.ctx.Err(); err != nil {
		state.errs = errors.Join(state.errs, err)
	}

	return state.errs
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.parallelism && state.ctx.Err() == nil {
		name := state.ready[0]
		state.ready = state.ready[1:]
		state.active++

		bundle := state.bundles[name]
		depChunks := make([]domain.Chunk, 0, len(bundle.DependsOn))
		for _, dep := range bundle.DependsOn {
			depChunks = append(depChunks, state.chunks[dep])
		}

		go state.executeBundle(bundle, depChunks)
	}
}

func (state *runState) executeBundle(bundle domain.Bundle, depChunks []domain.Chunk) {
	// The span ends before the result is sent so that it is recorded when Run returns.
	res := func() result {
		ctx, span := state.s.tracer.Start(state.ctx, "bundle", ports.WithAttribute("bundle", bundle.Name.String()))
		defer span.End()

		out, chunk, err := state.build(ctx, bundle, depChunks)
		if err != nil {
			span.RecordError(err)
			return result{bundle: bundle.Name, err: err}
		}
		span.SetAttribute("status", string(out.Status))
		return result{bundle: bundle.Name, res: out, chunk: chunk}
	}()

	state.resultsCh <- res
}

func (state *runState) build(
	ctx context.Context,
	bundle domain.Bundle,
	depChunks []domain.Chunk,
) (BundleResult, domain.Chunk, error) {
	root := state.project.Root
	source := state.s.source

	modules := make([]domain.ChunkableAsset, len(bundle.Modules))
	for i, path := range bundle.Modules {
		modules[i] = source.Module(root, path)
	}

	chunk, err := state.ec.Chunk(ctx, bundle.Name.String(), modules)
	if err != nil {
		return BundleResult{}, nil, err
	}

	refs := make([]domain.EntryRef, len(bundle.Evaluate))
	for i, path := range bundle.Evaluate {
		refs[i] = domain.DeferEntry(source.Defer(root, path, bundle.HasModule(path)))
	}
	entries, err := state.entries.Fold(refs...).Resolve(ctx)
	if err != nil {
		return BundleResult{}, nil, err
	}

	statics := make([]domain.Asset, len(bundle.Assets))
	for i, path := range bundle.Assets {
		statics[i] = source.File(root, path)
	}
	pool := make([]domain.Asset, 0, len(statics)+len(depChunks))
	pool = append(pool, statics...)
	for _, dep := range depChunks {
		pool = append(pool, dep)
	}

	evaluation, err := state.ec.EvaluateChunk(ctx, chunk, pool, entries)
	if err != nil {
		return BundleResult{}, nil, err
	}

	outputs, written, err := state.emit(ctx, []domain.Asset{chunk, evaluation}, statics)
	if err != nil {
		return BundleResult{}, nil, err
	}

	res := BundleResult{
		Bundle:     bundle.Name.String(),
		Status:     StatusBuilt,
		Evaluation: evaluation.Ident().String(),
		Chunk:      chunk.Ident().String(),
		Written:    written,
		Outputs:    outputs,
	}

	upToDate, err := state.record(res)
	if err != nil {
		return BundleResult{}, nil, err
	}
	if upToDate {
		res.Status = StatusUpToDate
	}

	return res, chunk, nil
}

// emit writes generated and static assets below the output directory and stores their content.
func (state *runState) emit(
	ctx context.Context,
	generated []domain.Asset,
	statics []domain.Asset,
) ([]domain.OutputRecord, int, error) {
	outputs := make([]domain.OutputRecord, 0, len(generated)+len(statics))
	written := 0

	emitOne := func(asset domain.Asset, isGenerated bool) error {
		content, err := asset.Content(ctx)
		if err != nil {
			return err
		}

		path := asset.Ident().String()
		digest := state.s.hasher.Sum(content.Data)

		wrote, err := state.s.emitter.Emit(filepath.Join(state.project.OutputDir, filepath.FromSlash(path)), content.Data)
		if err != nil {
			return err
		}
		if wrote {
			written++
		}

		if err := state.s.store.PutBlob(state.project.Root, digest, content.Data); err != nil {
			return err
		}

		outputs = append(outputs, domain.OutputRecord{
			Path:      path,
			Digest:    digest,
			Size:      len(content.Data),
			Generated: isGenerated,
		})
		return nil
	}

	for _, asset := range generated {
		if err := emitOne(asset, true); err != nil {
			return nil, 0, err
		}
	}
	for _, asset := range statics {
		if err := emitOne(asset, false); err != nil {
			return nil, 0, err
		}
	}

	return outputs, written, nil
}

// record compares res with the previous build of the bundle, prunes generated outputs
// that are no longer produced and stores the new record.
// It reports whether the bundle matched its previous build.
func (state *runState) record(res BundleResult) (bool, error) {
	store := state.s.store
	root := state.project.Root

	prev, err := store.Get(root, res.Bundle)
	if err != nil {
		return false, err
	}

	if prev != nil && prev.Evaluation == res.Evaluation && res.Written == 0 {
		return true, nil
	}

	if prev != nil {
		for _, old := range prev.Outputs {
			if !old.Generated || slices.ContainsFunc(res.Outputs, func(o domain.OutputRecord) bool { return o.Path == old.Path }) {
				continue
			}
			stale := filepath.Join(state.project.OutputDir, filepath.FromSlash(old.Path))
			if err := os.Remove(stale); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return false, zerr.With(zerr.Wrap(err, "failed to prune stale output"), "path", stale)
			}
		}
	}

	return false, store.Put(root, domain.BuildRecord{
		Bundle:     res.Bundle,
		Evaluation: res.Evaluation,
		Outputs:    res.Outputs,
		Timestamp:  time.Now(),
	})
}

func (state *runState) handleResult(res result) {
	state.active--

	if res.err != nil {
		err := zerr.With(zerr.Wrap(res.err, "failed to build bundle"), "bundle", res.bundle.String())
		state.errs = errors.Join(state.errs, err)
		state.results[res.bundle] = BundleResult{Bundle: res.bundle.String(), Status: StatusFailed}
		return
	}

	out := res.res
	state.results[res.bundle] = out
	state.chunks[res.bundle] = res.chunk
	state.logResult(out)

	dependents := state.project.Graph.Dependents(res.bundle)
	slices.SortFunc(dependents, domain.Ident.Compare)
	for _, dep := range dependents {
		if _, ok := state.bundles[dep]; !ok {
			continue
		}
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 {
			state.ready = append(state.ready, dep)
		}
	}
}

func (state *runState) logResult(out BundleResult) {
	switch out.Status {
	case StatusUpToDate:
		state.s.logger.Info(fmt.Sprintf("%s: up to date (%s)", out.Bundle, out.Evaluation))
	default:
		state.s.logger.Info(fmt.Sprintf("%s: built %s (%d written)", out.Bundle, out.Evaluation, out.Written))
	}
}

func (state *runState) report() *Report {
	report := &Report{Bundles: make([]BundleResult, 0, len(state.planned))}
	for _, name := range state.planned {
		res, ok := state.results[domain.NewIdent(name)]
		if !ok {
			res = BundleResult{Bundle: name, Status: StatusSkipped}
		}
		report.Bundles = append(report.Bundles, res)
	}
	return report
}
