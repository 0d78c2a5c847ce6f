package domain

import (
	"context"
	"errors"

	"go.trai.ch/zerr"
)

// EvaluatedEntry marks an asset that is executed, not merely included, when its chunk is loaded.
// Any asset that is both an Asset and a ChunkableAsset qualifies; producers never declare it.
type EvaluatedEntry interface {
	Asset
	ChunkableAsset
}

// EntryRef is a possibly deferred reference to an evaluated entry.
type EntryRef = Ref[EvaluatedEntry]

// AsEvaluatedEntry checks the EvaluatedEntry capability of a.
func AsEvaluatedEntry(a Asset) (EvaluatedEntry, bool) {
	if a == nil {
		return nil, false
	}
	e, ok := a.(EvaluatedEntry)
	return e, ok
}

// EntryOf wraps a concrete entry.
func EntryOf(e EvaluatedEntry) EntryRef {
	return Resolved(AssetKey(e), e)
}

// AdmitEntry checks the capability of a at admission time.
func AdmitEntry(a Asset) (EntryRef, error) {
	e, ok := AsEvaluatedEntry(a)
	if !ok {
		return nil, capabilityError(a)
	}
	return EntryOf(e), nil
}

// DeferEntry wraps a deferred asset reference. The capability is checked when the entry is resolved.
func DeferEntry(ref Ref[Asset]) EntryRef {
	return RefFunc[EvaluatedEntry]{
		K: ref.Key(),
		F: func(ctx context.Context) (EvaluatedEntry, error) {
			a, err := ref.Resolve(ctx)
			if err != nil {
				return nil, zerr.With(errors.Join(ErrResolution, err), "ref", ref.Key())
			}
			e, ok := AsEvaluatedEntry(a)
			if !ok {
				return nil, capabilityError(a)
			}
			return e, nil
		},
	}
}

func capabilityError(a Asset) error {
	err := zerr.With(errors.Join(ErrResolution, ErrNotChunkable), "capability", "EvaluatedEntry")
	if a != nil {
		err = zerr.With(err, "asset", a.Ident().String())
	}
	return err
}
