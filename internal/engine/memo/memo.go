// Package memo implements the memoized, incrementally invalidated computation table.
package memo

import (
	"context"
	"sync"
	"unique"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.Memoizer = (*Table)(nil)

type key = unique.Handle[string]

// entry is a stored result together with everything it read while computing.
type entry struct {
	value any
	deps  []key
}

// Table implements ports.Memoizer.
// Values are cached per key until one of their dependencies is invalidated.
type Table struct {
	group singleflight.Group

	mu         sync.Mutex
	entries    map[key]*entry
	dependents map[key]map[key]struct{} // dependency -> keys that read it
	epochs     map[key]uint64
	stats      ports.MemoStats
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{
		entries:    make(map[key]*entry),
		dependents: make(map[key]map[key]struct{}),
		epochs:     make(map[key]uint64),
	}
}

type frameKey struct{}

// frame tracks the dependencies of one running computation.
type frame struct {
	key    key
	parent *frame

	mu   sync.Mutex
	deps map[key]struct{}
}

func frameFrom(ctx context.Context) *frame {
	f, _ := ctx.Value(frameKey{}).(*frame)
	return f
}

func (f *frame) onChain(k key) bool {
	for cur := f; cur != nil; cur = cur.parent {
		if cur.key == k {
			return true
		}
	}
	return false
}

func (f *frame) add(k key) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deps[k] = struct{}{}
}

func (f *frame) list() []key {
	f.mu.Lock()
	defer f.mu.Unlock()
	deps := make([]key, 0, len(f.deps))
	for k := range f.deps {
		deps = append(deps, k)
	}
	return deps
}

// Call returns the cached value for name or computes it with fn.
func (t *Table) Call(ctx context.Context, name string, fn func(ctx context.Context) (any, error)) (any, error) {
	k := unique.Make(name)

	parent := frameFrom(ctx)
	if parent != nil {
		if parent.onChain(k) {
			return nil, zerr.With(zerr.Wrap(domain.ErrMemoCycle, "cannot memoize"), "key", name)
		}
		t.depend(parent, k)
	}

	if v, ok := t.lookup(k); ok {
		return v, nil
	}

	// Callers that join an in-flight computation count as hits.
	counted := false
	v, err, _ := t.group.Do(name, func() (any, error) {
		counted = true
		if v, ok := t.lookup(k); ok {
			return v, nil
		}
		return t.compute(ctx, k, parent, fn)
	})
	if !counted && err == nil {
		t.mu.Lock()
		t.stats.Hits++
		t.mu.Unlock()
	}
	return v, err
}

// Read records that the computation running in ctx depends on dep.
// It is a no-op outside a memoized computation.
func (t *Table) Read(ctx context.Context, dep string) {
	if f := frameFrom(ctx); f != nil {
		t.depend(f, unique.Make(dep))
	}
}

// Invalidate drops every value that transitively depends on one of deps.
func (t *Table) Invalidate(deps ...string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	queue := make([]key, 0, len(deps))
	for _, d := range deps {
		queue = append(queue, unique.Make(d))
	}

	seen := make(map[key]struct{})
	dropped := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for dependent := range t.dependents[cur] {
			if _, ok := seen[dependent]; ok {
				continue
			}
			seen[dependent] = struct{}{}
			queue = append(queue, dependent)

			t.epochs[dependent]++
			if e, ok := t.entries[dependent]; ok {
				t.unlink(dependent, e.deps)
				delete(t.entries, dependent)
				dropped++
			}
		}
	}

	t.stats.Invalidated += uint64(dropped)
	return dropped
}

// Stats returns the current counters.
func (t *Table) Stats() ports.MemoStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.stats
	s.Entries = len(t.entries)
	return s
}

func (t *Table) lookup(k key) (any, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[k]
	if !ok {
		return nil, false
	}
	t.stats.Hits++
	return e.value, true
}

func (t *Table) compute(
	ctx context.Context,
	k key,
	parent *frame,
	fn func(ctx context.Context) (any, error),
) (any, error) {
	t.mu.Lock()
	epoch := t.epochs[k]
	t.stats.Misses++
	t.mu.Unlock()

	f := &frame{key: k, parent: parent, deps: make(map[key]struct{})}
	v, err := fn(context.WithValue(ctx, frameKey{}, f))
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Invalidated while running: hand the value to the waiting callers but keep it out of the table.
	if t.epochs[k] != epoch {
		return v, nil
	}
	t.entries[k] = &entry{value: v, deps: f.list()}
	return v, nil
}

// depend links dep to the computation of f. The link is made immediately so that
// an invalidation arriving before f completes still marks it stale.
func (t *Table) depend(f *frame, dep key) {
	f.add(dep)

	t.mu.Lock()
	defer t.mu.Unlock()
	set, ok := t.dependents[dep]
	if !ok {
		set = make(map[key]struct{})
		t.dependents[dep] = set
	}
	set[f.key] = struct{}{}
}

func (t *Table) unlink(k key, deps []key) {
	for _, d := range deps {
		set := t.dependents[d]
		delete(set, k)
		if len(set) == 0 {
			delete(t.dependents, d)
		}
	}
}
