package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/watcher"
)

type batches struct {
	mu  sync.Mutex
	got [][]string
}

func (b *batches) record(paths []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.got = append(b.got, paths)
}

func (b *batches) all() [][]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.got
}

func TestDebouncer_CoalescesPaths(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add("/project/src/b.js")
		d.Add("/project/src/a.js")
		d.Add("/project/src/b.js")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Equal(t, []string{"/project/src/a.js", "/project/src/b.js"}, b.all()[0], "paths are distinct and sorted")
	})
}

func TestDebouncer_AddRestartsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add("/project/src/a.js")
		time.Sleep(60 * time.Millisecond)
		d.Add("/project/src/b.js")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, b.all(), "window restarted by the second add")

		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		require.Len(t, b.all(), 1)
		assert.Len(t, b.all()[0], 2)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var b batches
		d := watcher.NewDebouncer(100*time.Millisecond, b.record)

		d.Add("/project/src/a.js")
		d.Flush()
		require.Len(t, b.all(), 1, "flush delivers synchronously")

		// The stopped timer must not deliver the batch again.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Len(t, b.all(), 1)

		d.Add("/project/src/b.js")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		require.Len(t, b.all(), 2)
		assert.Equal(t, []string{"/project/src/b.js"}, b.all()[1])
	})
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	t.Parallel()

	var b batches
	watcher.NewDebouncer(time.Second, b.record).Flush()
	assert.Empty(t, b.all())
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)
		d.Add("/project/src/a.js")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
