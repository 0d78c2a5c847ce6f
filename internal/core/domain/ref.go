package domain

import "context"

// Ref is a reference to a value that may still be pending.
// Callers must Resolve a Ref before inspecting the value.
type Ref[T any] interface {
	// Key identifies the referenced value. Two refs with the same key resolve to the same value.
	Key() string
	// Resolve returns the concrete value, awaiting the producing computation if needed.
	Resolve(ctx context.Context) (T, error)
}

type resolvedRef[T any] struct {
	key   string
	value T
}

// Resolved returns a Ref to an already computed value.
func Resolved[T any](key string, value T) Ref[T] {
	return resolvedRef[T]{key: key, value: value}
}

func (r resolvedRef[T]) Key() string { return r.key }

func (r resolvedRef[T]) Resolve(context.Context) (T, error) { return r.value, nil }

// RefFunc adapts a resolve function to a Ref.
type RefFunc[T any] struct {
	K string
	F func(ctx context.Context) (T, error)
}

// Key returns the reference key.
func (r RefFunc[T]) Key() string { return r.K }

// Resolve calls the wrapped function.
func (r RefFunc[T]) Resolve(ctx context.Context) (T, error) { return r.F(ctx) }
