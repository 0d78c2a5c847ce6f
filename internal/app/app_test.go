package app_test

import (
	"context"
	"errors"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/cas"
	"go.trai.ch/stitch/internal/adapters/chunking"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/adapters/source"
	"go.trai.ch/stitch/internal/adapters/telemetry"
	"go.trai.ch/stitch/internal/adapters/watcher"
	"go.trai.ch/stitch/internal/app"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/core/ports/mocks"
	"go.trai.ch/stitch/internal/engine/memo"
	"go.trai.ch/stitch/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

// newProject lays out a single bundle project in a temporary directory.
func newProject(t *testing.T) *domain.Project {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "main.js"), []byte("console.log('hi');"), 0o600))

	graph := domain.NewGraph()
	require.NoError(t, graph.AddBundle(&domain.Bundle{
		Name:     domain.NewIdent("app"),
		Modules:  domain.NewIdents([]string{"src/main.js"}),
		Evaluate: domain.NewIdents([]string{"src/main.js"}),
	}))

	return &domain.Project{
		Root:        root,
		OutputDir:   filepath.Join(root, "dist"),
		Environment: domain.Environment{Kind: domain.EnvBrowser, PublicPath: "/"},
		Graph:       graph,
	}
}

func newApp(t *testing.T, loader ports.ConfigLoader, w ports.Watcher, log ports.Logger) *app.App {
	t.Helper()

	table := memo.NewTable()
	hasher := fs.NewHasher()
	store, err := cas.NewStore()
	require.NoError(t, err)
	tracer := telemetry.NewNoOpTracer()

	sched := scheduler.NewScheduler(
		source.NewSource(table),
		chunking.NewFactory(hasher),
		table,
		fs.NewEmitter(hasher),
		store,
		hasher,
		tracer,
		log,
	)
	return app.New(loader, sched, table, w, tracer, log)
}

// recorder collects logged info messages.
type recorder struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recorder) info(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.msgs...)
}

func chunksOf(t *testing.T, project *domain.Project) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(project.OutputDir, "app-*.js"))
	require.NoError(t, err)
	return matches
}

func TestApp_Build(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	project := newProject(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	rec := &recorder{}

	loader.EXPECT().Load(project.Root).Return(project, nil).Times(2)
	log.EXPECT().Info(gomock.Any()).Do(rec.info).AnyTimes()

	a := newApp(t, loader, mocks.NewMockWatcher(ctrl), log)

	report, err := a.Build(t.Context(), project.Root, app.BuildOptions{Parallelism: 1})
	require.NoError(t, err)
	require.Len(t, report.Bundles, 1)
	assert.Equal(t, scheduler.StatusBuilt, report.Bundles[0].Status)
	assert.Len(t, chunksOf(t, project), 1)
	assert.FileExists(t, filepath.Join(project.OutputDir, report.Bundles[0].Evaluation))

	_, err = a.Build(t.Context(), project.Root, app.BuildOptions{})
	require.NoError(t, err)

	assert.Contains(t, rec.messages(), "stitched 1 bundles (1 built, 0 up to date)")
	assert.Contains(t, rec.messages(), "stitched 1 bundles (0 built, 1 up to date)")
}

func TestApp_Build_LoadError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)

	a := newApp(t, loader, mocks.NewMockWatcher(ctrl), mocks.NewMockLogger(ctrl))

	_, err := a.Build(t.Context(), ".", app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestApp_Build_Failure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	project := newProject(t)
	require.NoError(t, os.Remove(filepath.Join(project.Root, "src", "main.js")))

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(project.Root).Return(project, nil)

	a := newApp(t, loader, mocks.NewMockWatcher(ctrl), mocks.NewMockLogger(ctrl))

	report, err := a.Build(t.Context(), project.Root, app.BuildOptions{})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	require.ErrorIs(t, err, domain.ErrAssetReadFailed)
	require.NotNil(t, report)
	assert.Equal(t, scheduler.StatusFailed, report.Bundles[0].Status)
}

func TestApp_Clean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        app.CleanOptions
		wantOutputs bool
		wantCache   bool
	}{
		{name: "outputs", opts: app.CleanOptions{Outputs: true}, wantCache: true},
		{name: "cache", opts: app.CleanOptions{Cache: true}, wantOutputs: true},
		{name: "all", opts: app.CleanOptions{Outputs: true, Cache: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			project := newProject(t)
			loader := mocks.NewMockConfigLoader(ctrl)
			log := mocks.NewMockLogger(ctrl)

			loader.EXPECT().Load(project.Root).Return(project, nil).AnyTimes()
			log.EXPECT().Info(gomock.Any()).AnyTimes()

			a := newApp(t, loader, mocks.NewMockWatcher(ctrl), log)
			_, err := a.Build(t.Context(), project.Root, app.BuildOptions{})
			require.NoError(t, err)

			require.NoError(t, a.Clean(t.Context(), project.Root, tt.opts))

			cache := filepath.Join(project.Root, domain.DefaultStitchPath())
			if tt.wantOutputs {
				assert.DirExists(t, project.OutputDir)
			} else {
				assert.NoDirExists(t, project.OutputDir)
			}
			if tt.wantCache {
				assert.DirExists(t, cache)
			} else {
				assert.NoDirExists(t, cache)
			}
		})
	}
}

func TestApp_Clean_Nothing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	a := newApp(t, mocks.NewMockConfigLoader(ctrl), mocks.NewMockWatcher(ctrl), mocks.NewMockLogger(ctrl))

	require.NoError(t, a.Clean(t.Context(), ".", app.CleanOptions{}))
}

// channelWatcher wires a mock watcher to a channel of events that closes on Stop.
func channelWatcher(ctrl *gomock.Controller, root string) (*mocks.MockWatcher, chan<- ports.WatchEvent) {
	events := make(chan ports.WatchEvent)
	w := mocks.NewMockWatcher(ctrl)

	w.EXPECT().Start(gomock.Any(), root).Return(nil)
	w.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		for e := range events {
			if !yield(e) {
				return
			}
		}
	}))
	w.EXPECT().Stop().DoAndReturn(func() error {
		close(events)
		return nil
	})
	return w, events
}

func TestApp_Watch_RebuildsOnChange(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		project := newProject(t)
		loader := mocks.NewMockConfigLoader(ctrl)
		log := mocks.NewMockLogger(ctrl)
		rec := &recorder{}

		loader.EXPECT().Load(project.Root).Return(project, nil).Times(1)
		log.EXPECT().Info(gomock.Any()).Do(rec.info).AnyTimes()

		w, events := channelWatcher(ctrl, project.Root)
		a := newApp(t, loader, w, log)

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error)
		go func() {
			done <- a.Watch(ctx, project.Root, app.WatchOptions{})
		}()

		synctest.Wait()
		before := chunksOf(t, project)
		require.Len(t, before, 1)

		entry := filepath.Join(project.Root, "src", "main.js")
		require.NoError(t, os.WriteFile(entry, []byte("console.log('changed');"), 0o600))
		events <- ports.WatchEvent{Path: entry, Operation: ports.OpWrite}
		events <- ports.WatchEvent{Path: before[0], Operation: ports.OpWrite}

		synctest.Wait()
		assert.Equal(t, before, chunksOf(t, project), "nothing rebuilds inside the debounce window")

		time.Sleep(2 * watcher.DefaultDebounceWindow)
		synctest.Wait()

		after := chunksOf(t, project)
		require.Len(t, after, 1)
		assert.NotEqual(t, before, after)
		data, err := os.ReadFile(after[0])
		require.NoError(t, err)
		assert.Contains(t, string(data), "changed")

		cancel()
		require.NoError(t, <-done)

		hasPrefix := func(prefix string) func(string) bool {
			return func(msg string) bool { return strings.HasPrefix(msg, prefix) }
		}
		assert.True(t, slices.ContainsFunc(rec.messages(), hasPrefix("1 files changed, ")))
		assert.True(t, slices.ContainsFunc(rec.messages(), hasPrefix("memo: ")))
	})
}

func TestApp_Watch_ReloadsConfiguration(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		project := newProject(t)
		loader := mocks.NewMockConfigLoader(ctrl)
		log := mocks.NewMockLogger(ctrl)
		reloadErr := errors.New("invalid yaml")

		gomock.InOrder(
			loader.EXPECT().Load(project.Root).Return(project, nil),
			loader.EXPECT().Load(project.Root).Return(nil, reloadErr),
		)
		log.EXPECT().Info(gomock.Any()).AnyTimes()
		log.EXPECT().Error(gomock.Any()).Do(func(err error) {
			assert.ErrorIs(t, err, reloadErr)
		})

		w, events := channelWatcher(ctrl, project.Root)
		a := newApp(t, loader, w, log)

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error)
		go func() {
			done <- a.Watch(ctx, project.Root, app.WatchOptions{})
		}()

		synctest.Wait()
		events <- ports.WatchEvent{Path: filepath.Join(project.Root, domain.ConfigFileName), Operation: ports.OpWrite}
		time.Sleep(2 * watcher.DefaultDebounceWindow)
		synctest.Wait()

		cancel()
		require.NoError(t, <-done)
	})
}

func TestApp_Watch_ReloadRemovesModule(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		project := newProject(t)
		project.Environment = domain.Environment{Kind: domain.EnvManifest}
		loader := mocks.NewMockConfigLoader(ctrl)
		log := mocks.NewMockLogger(ctrl)

		// The reloaded configuration keeps src/main.js as an entry but no longer declares it a module.
		require.NoError(t, os.WriteFile(filepath.Join(project.Root, "src", "other.js"), []byte("other();"), 0o600))
		graph := domain.NewGraph()
		require.NoError(t, graph.AddBundle(&domain.Bundle{
			Name:     domain.NewIdent("app"),
			Modules:  domain.NewIdents([]string{"src/other.js"}),
			Evaluate: domain.NewIdents([]string{"src/main.js"}),
		}))
		reloaded := *project
		reloaded.Graph = graph

		gomock.InOrder(
			loader.EXPECT().Load(project.Root).Return(project, nil),
			loader.EXPECT().Load(project.Root).Return(&reloaded, nil),
		)
		log.EXPECT().Info(gomock.Any()).AnyTimes()
		log.EXPECT().Error(gomock.Any()).Do(func(err error) {
			assert.ErrorIs(t, err, domain.ErrBuildFailed)
			assert.ErrorIs(t, err, domain.ErrUnresolvedEntry)
			assert.ErrorIs(t, err, domain.ErrNotChunkable)
		})

		w, events := channelWatcher(ctrl, project.Root)
		a := newApp(t, loader, w, log)

		ctx, cancel := context.WithCancel(t.Context())
		done := make(chan error)
		go func() {
			done <- a.Watch(ctx, project.Root, app.WatchOptions{})
		}()

		synctest.Wait()
		initial, err := filepath.Glob(filepath.Join(project.OutputDir, "app-*.cbor"))
		require.NoError(t, err)
		require.Len(t, initial, 1, "the initial build succeeds")

		events <- ports.WatchEvent{Path: filepath.Join(project.Root, domain.ConfigFileName), Operation: ports.OpWrite}
		time.Sleep(2 * watcher.DefaultDebounceWindow)
		synctest.Wait()

		cancel()
		require.NoError(t, <-done)
	})
}
