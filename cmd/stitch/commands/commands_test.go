package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/cmd/stitch/commands"
	"go.trai.ch/stitch/internal/app"
	"go.trai.ch/stitch/internal/build"
	"go.trai.ch/stitch/internal/engine/scheduler"
)

type mockApp struct {
	buildFunc func(ctx context.Context, cwd string, opts app.BuildOptions) (*scheduler.Report, error)
	watchFunc func(ctx context.Context, cwd string, opts app.WatchOptions) error
	cleanFunc func(ctx context.Context, cwd string, opts app.CleanOptions) error
}

func (m *mockApp) Build(ctx context.Context, cwd string, opts app.BuildOptions) (*scheduler.Report, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, cwd, opts)
	}
	return &scheduler.Report{}, nil
}

func (m *mockApp) Watch(ctx context.Context, cwd string, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, cwd, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, cwd string, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, cwd, opts)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var (
			capturedCwd  string
			capturedOpts app.BuildOptions
		)

		mock := &mockApp{
			buildFunc: func(_ context.Context, cwd string, opts app.BuildOptions) (*scheduler.Report, error) {
				capturedCwd = cwd
				capturedOpts = opts
				return &scheduler.Report{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "app", "vendor", "-j", "3", "--timings", "-C", "web"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "web", capturedCwd)
		assert.Equal(t, app.BuildOptions{
			Targets:     []string{"app", "vendor"},
			Parallelism: 3,
			Timings:     true,
		}, capturedOpts)
	})

	t.Run("builds everything without arguments", func(t *testing.T) {
		var capturedOpts app.BuildOptions
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ string, opts app.BuildOptions) (*scheduler.Report, error) {
				capturedOpts = opts
				return &scheduler.Report{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, capturedOpts.Targets)
		assert.Zero(t, capturedOpts.Parallelism)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ string, _ app.BuildOptions) (*scheduler.Report, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Watch(t *testing.T) {
	var capturedOpts app.WatchOptions
	mock := &mockApp{
		watchFunc: func(_ context.Context, _ string, opts app.WatchOptions) error {
			capturedOpts = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "app", "--debounce", "200ms"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, []string{"app"}, capturedOpts.Targets)
	assert.Equal(t, 200*time.Millisecond, capturedOpts.Debounce)
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.CleanOptions
	}{
		{name: "default", args: []string{"clean"}, want: app.CleanOptions{Outputs: true}},
		{name: "cache", args: []string{"clean", "--cache"}, want: app.CleanOptions{Cache: true}},
		{name: "all", args: []string{"clean", "--all"}, want: app.CleanOptions{Outputs: true, Cache: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.CleanOptions
			mock := &mockApp{
				cleanFunc: func(_ context.Context, _ string, opts app.CleanOptions) error {
					captured = opts
					return nil
				},
			}

			cli := commands.New(mock)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.want, captured)
		})
	}
}

func TestCommands_JSONHook(t *testing.T) {
	var enabled bool
	cli := commands.New(&mockApp{})
	cli.SetJSONHook(func(v bool) { enabled = v })
	cli.SetArgs([]string{"build", "--json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, enabled)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "stitch version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}
