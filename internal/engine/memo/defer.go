package memo

import (
	"context"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
)

// Defer returns a reference to the memoized computation key.
// Nothing runs until the reference is resolved; every resolution shares the cached value.
func Defer[T any](m ports.Memoizer, key string, fn func(ctx context.Context) (T, error)) domain.Ref[T] {
	return domain.RefFunc[T]{
		K: key,
		F: func(ctx context.Context) (T, error) {
			return ports.Memo(ctx, m, key, fn)
		},
	}
}
