// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/zerr"
)

// MemoStats is a snapshot of memoizer counters.
type MemoStats struct {
	Hits        uint64
	Misses      uint64
	Invalidated uint64
	Entries     int
}

// Memoizer is the incremental computation substrate every operation runs under.
// Keys identify an operation together with the identity of its arguments.
//
//go:generate mockgen -source=memo.go -destination=mocks/mock_memo.go -package=mocks
type Memoizer interface {
	// Call returns the cached value for key, or computes it with fn.
	// Concurrent callers with the same key share a single execution.
	// The ctx passed to fn tracks every nested Call and Read as a dependency of key.
	Call(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, error)

	// Read records that the computation running in ctx depends on the external input dep,
	// for example "file:/abs/path".
	Read(ctx context.Context, dep string)

	// Invalidate drops every cached value that transitively depends on one of deps.
	// It returns the number of cached values dropped.
	Invalidate(deps ...string) int

	// Stats returns the current counters.
	Stats() MemoStats
}

// Memo is the typed form of Memoizer.Call.
func Memo[T any](ctx context.Context, m Memoizer, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	v, err := m.Call(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, zerr.With(zerr.New("memoized value has unexpected type"), "key", key)
	}
	return typed, nil
}
