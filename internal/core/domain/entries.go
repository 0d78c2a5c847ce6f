package domain

import (
	"context"
	"errors"
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// EvaluatedEntries is an ordered, immutable sequence of evaluated entry references.
// Insertion order is execution order. Duplicates are kept; rejecting them is the caller's concern.
type EvaluatedEntries struct {
	refs []EntryRef
}

// Empty returns a collection with no entries.
func Empty() *EvaluatedEntries {
	return &EvaluatedEntries{}
}

// One returns a collection holding exactly entry.
func One(entry EntryRef) *EvaluatedEntries {
	return &EvaluatedEntries{refs: []EntryRef{entry}}
}

// WithEntry resolves self and returns a new collection with entry appended.
// Earlier collections are left untouched.
func WithEntry(ctx context.Context, self Ref[*EvaluatedEntries], entry EntryRef) (*EvaluatedEntries, error) {
	current, err := self.Resolve(ctx)
	if err != nil {
		return nil, zerr.With(errors.Join(ErrResolution, err), "ref", self.Key())
	}
	return current.Append(entry), nil
}

// Append returns a new collection with entry appended.
// The result never shares a writable backing array with e.
func (e *EvaluatedEntries) Append(entry EntryRef) *EvaluatedEntries {
	var refs []EntryRef
	if e != nil {
		refs = e.refs
	}
	next := make([]EntryRef, len(refs), len(refs)+1)
	copy(next, refs)
	return &EvaluatedEntries{refs: append(next, entry)}
}

// Len returns the number of entries.
func (e *EvaluatedEntries) Len() int {
	if e == nil {
		return 0
	}
	return len(e.refs)
}

// At returns the entry at index i.
func (e *EvaluatedEntries) At(i int) EntryRef {
	return e.refs[i]
}

// All yields entries in stored order.
func (e *EvaluatedEntries) All() iter.Seq2[int, EntryRef] {
	return func(yield func(int, EntryRef) bool) {
		if e == nil {
			return
		}
		for i, ref := range e.refs {
			if !yield(i, ref) {
				return
			}
		}
	}
}

// Keys returns the entry keys in stored order.
func (e *EvaluatedEntries) Keys() []string {
	keys := make([]string, 0, e.Len())
	for _, ref := range e.All() {
		keys = append(keys, ref.Key())
	}
	return keys
}

// Key identifies the collection by its ordered entry keys.
func (e *EvaluatedEntries) Key() string {
	return JoinKey(e.Keys()...)
}

// Equal reports whether both collections hold the same keys in the same order.
func (e *EvaluatedEntries) Equal(other *EvaluatedEntries) bool {
	return slices.Equal(e.Keys(), other.Keys())
}
