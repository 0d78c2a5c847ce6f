// Package app implements the application layer for stitch.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.trai.ch/stitch/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/stitch/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	memo         ports.Memoizer
	watcher      ports.Watcher
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sched *scheduler.Scheduler,
	memo ports.Memoizer,
	w ports.Watcher,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scheduler:    sched,
		memo:         memo,
		watcher:      w,
		tracer:       tracer,
		logger:       log,
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Targets names the bundles to build. Empty builds every bundle.
	Targets []string
	// Parallelism bounds the bundles built at once. Zero uses the number of CPUs.
	Parallelism int
	// Timings logs the duration of every build step.
	Timings bool
}

// Build loads the project found from cwd and builds it.
func (a *App) Build(ctx context.Context, cwd string, opts BuildOptions) (*scheduler.Report, error) {
	project, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Timings {
		shutdown := telemetry.InstallTimings(a.logger)
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
		}()
	}

	return a.build(ctx, project, opts)
}

func (a *App) build(ctx context.Context, project *domain.Project, opts BuildOptions) (*scheduler.Report, error) {
	ctx, span := a.tracer.Start(ctx, "build", ports.WithAttribute("env", project.Environment.String()))
	defer span.End()

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	report, err := a.scheduler.Run(ctx, project, opts.Targets, parallelism)
	if err != nil {
		span.RecordError(err)
		return report, errors.Join(domain.ErrBuildFailed, err)
	}

	a.logger.Info(summarize(report))
	return report, nil
}

func summarize(report *scheduler.Report) string {
	built, upToDate := 0, 0
	for _, b := range report.Bundles {
		switch b.Status {
		case scheduler.StatusBuilt:
			built++
		case scheduler.StatusUpToDate:
			upToDate++
		}
	}
	return fmt.Sprintf("stitched %d bundles (%d built, %d up to date)", len(report.Bundles), built, upToDate)
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	BuildOptions

	// Debounce is the quiet window after the last change before rebuilding.
	Debounce time.Duration
}

// Watch builds the project and rebuilds it whenever a source file changes, until ctx is done.
// Failed rebuilds are logged and do not end the session.
func (a *App) Watch(ctx context.Context, cwd string, opts WatchOptions) error {
	project, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if _, err := a.build(ctx, project, opts.BuildOptions); err != nil {
		a.logger.Error(err)
	}

	if err := a.watcher.Start(ctx, project.Root); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	batches := make(chan []string)
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		select {
		case batches <- paths:
		case <-ctx.Done():
		}
	})

	go func() {
		for event := range a.watcher.Events() {
			if !ignored(project, event.Path) {
				debouncer.Add(event.Path)
			}
		}
	}()

	a.logger.Info("watching " + project.Root)

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-batches:
			project = a.rebuild(ctx, cwd, project, paths, opts.BuildOptions)
		}
	}
}

// rebuild invalidates what paths fed and builds again. It returns the project to keep watching,
// which is reloaded when the configuration file changed.
func (a *App) rebuild(
	ctx context.Context,
	cwd string,
	project *domain.Project,
	paths []string,
	opts BuildOptions,
) *domain.Project {
	deps := make([]string, len(paths))
	for i, path := range paths {
		deps[i] = ports.FileDependency(path)

		if path == filepath.Join(project.Root, domain.ConfigFileName) {
			reloaded, err := a.configLoader.Load(cwd)
			if err != nil {
				a.logger.Error(zerr.Wrap(err, "failed to reload configuration"))
				return project
			}
			project = reloaded
		}
	}

	invalidated := a.memo.Invalidate(deps...)
	a.logger.Info(fmt.Sprintf("%d files changed, %d cached results invalidated", len(paths), invalidated))

	if _, err := a.build(ctx, project, opts); err != nil {
		a.logger.Error(err)
	}

	stats := a.memo.Stats()
	a.logger.Info(fmt.Sprintf("memo: %d hits, %d misses, %d entries", stats.Hits, stats.Misses, stats.Entries))
	return project
}

// ignored reports whether path lies below a directory stitch writes to.
func ignored(project *domain.Project, path string) bool {
	for _, dir := range []string{project.OutputDir, filepath.Join(project.Root, domain.StitchDirName)} {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Outputs removes the output directory.
	Outputs bool
	// Cache removes build records and stored blobs.
	Cache bool
}

// Clean removes build outputs and cached state based on the provided options.
func (a *App) Clean(_ context.Context, cwd string, options CleanOptions) error {
	var errs error

	remove := func(path string, name string) {
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove "+name), "path", path))
			return
		}
		a.logger.Info("removed " + name)
	}

	if !options.Outputs && !options.Cache {
		return nil
	}

	project, err := a.configLoader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if options.Outputs {
		remove(project.OutputDir, "outputs")
	}
	if options.Cache {
		remove(filepath.Join(project.Root, domain.DefaultStitchPath()), "cache")
	}

	return errs
}
