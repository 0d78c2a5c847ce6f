package evaluate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/engine/evaluate"
)

func TestIdentity(t *testing.T) {
	t.Parallel()

	chunk := domain.NewIdent("app-0011aabb.js")
	entries := domain.NewIdents([]string{"src/a.js", "src/b.js"})
	pool := domain.NewIdents([]string{"static/a.css", "vendor.js"})

	id := evaluate.Identity(chunk, entries, pool, ".js")
	assert.Regexp(t, `^evaluate-[0-9a-f]{16}\.js$`, id.String())

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, id, evaluate.Identity(chunk, entries, pool, ".js"))
	})

	t.Run("pool is a set", func(t *testing.T) {
		permuted := domain.NewIdents([]string{"vendor.js", "static/a.css", "vendor.js"})
		assert.Equal(t, id, evaluate.Identity(chunk, entries, permuted, ".js"))
	})

	t.Run("entries are a sequence", func(t *testing.T) {
		reversed := domain.NewIdents([]string{"src/b.js", "src/a.js"})
		assert.NotEqual(t, id, evaluate.Identity(chunk, reversed, pool, ".js"))
	})

	t.Run("sections do not bleed", func(t *testing.T) {
		// Moving an ident from the entries to the pool must change the identity.
		moved := evaluate.Identity(chunk, entries[:1], append(pool, entries[1]), ".js")
		assert.NotEqual(t, id, moved)
	})

	t.Run("chunk", func(t *testing.T) {
		assert.NotEqual(t, id, evaluate.Identity(domain.NewIdent("app-ffff0000.js"), entries, pool, ".js"))
	})

	t.Run("extension", func(t *testing.T) {
		assert.Regexp(t, `\.cbor$`, evaluate.Identity(chunk, entries, pool, ".cbor").String())
	})
}
