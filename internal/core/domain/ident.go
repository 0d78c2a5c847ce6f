package domain

import (
	"cmp"
	"slices"
	"unique"
)

// Ident is the identity of an asset or bundle: a project-relative path or a key.
// It wraps a unique.Handle[string] so that identities compare by pointer and
// repeated paths share storage.
type Ident struct {
	h unique.Handle[string]
}

// NewIdent interns s as an Ident.
func NewIdent(s string) Ident {
	return Ident{h: unique.Make(s)}
}

// NewIdents interns every string in s.
func NewIdents(s []string) []Ident {
	res := make([]Ident, len(s))
	for i, v := range s {
		res[i] = NewIdent(v)
	}
	return res
}

// String returns the underlying string value.
func (id Ident) String() string {
	var zero unique.Handle[string]
	if id.h == zero {
		return ""
	}
	return id.h.Value()
}

// IsZero reports whether the Ident was never set.
func (id Ident) IsZero() bool {
	var zero unique.Handle[string]
	return id.h == zero
}

// Compare orders identities by their string value.
func (id Ident) Compare(other Ident) int {
	if id == other {
		return 0
	}
	return cmp.Compare(id.String(), other.String())
}

// MarshalText implements encoding.TextMarshaler.
func (id Ident) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *Ident) UnmarshalText(text []byte) error {
	id.h = unique.Make(string(text))
	return nil
}

// SortedIdents returns a sorted copy of ids with duplicates removed.
func SortedIdents(ids []Ident) []Ident {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, Ident.Compare)
	return slices.Compact(sorted)
}
