package evaluate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/engine/evaluate"
	"go.trai.ch/stitch/internal/engine/memo"
)

func TestEntries_WithEntry(t *testing.T) {
	t.Parallel()

	entries := evaluate.NewEntries(memo.NewTable())
	a := domain.EntryOf(newModule("src/a.js"))
	b := domain.EntryOf(newModule("src/b.js"))

	empty := entries.Empty()
	withA := entries.WithEntry(empty, a)
	withAB := entries.WithEntry(withA, b)

	got, err := withAB.Resolve(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.js", "src/b.js"}, got.Keys())

	snapshot, err := withA.Resolve(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"src/a.js"}, snapshot.Keys(), "earlier collections are unchanged")

	none, err := empty.Resolve(t.Context())
	require.NoError(t, err)
	assert.Zero(t, none.Len())
}

func TestEntries_OneMatchesWithEntry(t *testing.T) {
	t.Parallel()

	entries := evaluate.NewEntries(memo.NewTable())
	a := domain.EntryOf(newModule("src/a.js"))

	one, err := entries.One(a).Resolve(t.Context())
	require.NoError(t, err)
	folded, err := entries.Fold(a).Resolve(t.Context())
	require.NoError(t, err)

	assert.True(t, one.Equal(folded))
}

func TestEntries_Memoized(t *testing.T) {
	t.Parallel()

	table := memo.NewTable()
	entries := evaluate.NewEntries(table)
	a := domain.EntryOf(newModule("src/a.js"))

	first, err := entries.One(a).Resolve(t.Context())
	require.NoError(t, err)
	second, err := entries.One(a).Resolve(t.Context())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, uint64(1), table.Stats().Hits)
}

func TestEntries_WithEntry_FailedSelf(t *testing.T) {
	t.Parallel()

	table := memo.NewTable()
	entries := evaluate.NewEntries(table)
	upstream := errors.New("upstream failed")

	broken := memo.Defer(table, "entries|broken", func(context.Context) (*domain.EvaluatedEntries, error) {
		return nil, upstream
	})

	_, err := entries.WithEntry(broken, domain.EntryOf(newModule("src/a.js"))).Resolve(t.Context())
	require.ErrorIs(t, err, domain.ErrResolution)
	require.ErrorIs(t, err, upstream)
}

func TestEntries_Fold_PathsWithSeparators(t *testing.T) {
	t.Parallel()

	entries := evaluate.NewEntries(memo.NewTable())

	first, err := entries.Fold(
		domain.EntryOf(newModule("a")),
		domain.EntryOf(newModule("b|c")),
	).Resolve(t.Context())
	require.NoError(t, err)

	second, err := entries.Fold(
		domain.EntryOf(newModule("a|b")),
		domain.EntryOf(newModule("c")),
	).Resolve(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b|c"}, first.Keys())
	assert.Equal(t, []string{"a|b", "c"}, second.Keys())
}
