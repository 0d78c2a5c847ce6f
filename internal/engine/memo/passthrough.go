package memo

import (
	"context"

	"go.trai.ch/stitch/internal/core/ports"
)

var _ ports.Memoizer = Passthrough{}

// Passthrough is a Memoizer that caches nothing and runs every call.
type Passthrough struct{}

// Call runs fn.
func (Passthrough) Call(ctx context.Context, _ string, fn func(ctx context.Context) (any, error)) (any, error) {
	return fn(ctx)
}

// Read does nothing.
func (Passthrough) Read(context.Context, string) {}

// Invalidate does nothing.
func (Passthrough) Invalidate(...string) int { return 0 }

// Stats returns zero counters.
func (Passthrough) Stats() ports.MemoStats { return ports.MemoStats{} }
