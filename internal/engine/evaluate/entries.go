package evaluate

import (
	"context"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/memo"
)

// Entries builds evaluated entry collections as memoized computations.
// The returned references are pending until resolved.
type Entries struct {
	memo ports.Memoizer
}

// NewEntries creates an Entries backed by m.
func NewEntries(m ports.Memoizer) *Entries {
	return &Entries{memo: m}
}

// Empty returns a reference to the empty collection.
func (e *Entries) Empty() domain.Ref[*domain.EvaluatedEntries] {
	return memo.Defer(e.memo, domain.JoinKey("entries", "empty"), func(context.Context) (*domain.EvaluatedEntries, error) {
		return domain.Empty(), nil
	})
}

// One returns a reference to the collection holding only entry.
func (e *Entries) One(entry domain.EntryRef) domain.Ref[*domain.EvaluatedEntries] {
	key := domain.JoinKey("entries", "one", entry.Key())
	return memo.Defer(e.memo, key, func(context.Context) (*domain.EvaluatedEntries, error) {
		return domain.One(entry), nil
	})
}

// WithEntry returns a reference to self with entry appended.
// Resolving it fails with domain.ErrResolution if self cannot be resolved.
func (e *Entries) WithEntry(
	self domain.Ref[*domain.EvaluatedEntries],
	entry domain.EntryRef,
) domain.Ref[*domain.EvaluatedEntries] {
	key := domain.JoinKey("entries", "with", self.Key(), entry.Key())
	return memo.Defer(e.memo, key, func(ctx context.Context) (*domain.EvaluatedEntries, error) {
		return domain.WithEntry(ctx, self, entry)
	})
}

// Fold appends every entry to the empty collection in order.
func (e *Entries) Fold(entries ...domain.EntryRef) domain.Ref[*domain.EvaluatedEntries] {
	acc := e.Empty()
	for _, entry := range entries {
		acc = e.WithEntry(acc, entry)
	}
	return acc
}
