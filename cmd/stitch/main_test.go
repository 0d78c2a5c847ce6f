package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/logger"
	"go.trai.ch/stitch/internal/app"
	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/stitch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newComponents(ctrl *gomock.Controller, loader ports.ConfigLoader, log ports.Logger) *app.Components {
	a := app.New(loader, nil, mocks.NewMockMemoizer(ctrl), mocks.NewMockWatcher(ctrl), mocks.NewMockTracer(ctrl), log)
	return &app.Components{App: a, Logger: log}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	components := newComponents(ctrl, mocks.NewMockConfigLoader(ctrl), mocks.NewMockLogger(ctrl))

	stdout := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version"}, stdout, io.Discard, func(context.Context) (*app.Components, error) {
		return components, nil
	})

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "stitch version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	stderr := new(bytes.Buffer)
	exitCode := run(t.Context(), []string{"version"}, io.Discard, stderr, func(context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	})

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)

	loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	})

	components := newComponents(ctrl, loader, log)
	exitCode := run(t.Context(), []string{"build"}, io.Discard, io.Discard, func(context.Context) (*app.Components, error) {
		return components, nil
	})

	assert.Equal(t, 1, exitCode)
}

// TestRun_JSONLogging verifies that --json switches the logger to JSON output.
func TestRun_JSONLogging(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("web").Return(nil, domain.ErrConfigNotFound)

	out := new(bytes.Buffer)
	log := logger.New()
	log.SetOutput(out)

	components := newComponents(ctrl, loader, log)
	exitCode := run(t.Context(), []string{"build", "--json", "-C", "web"}, io.Discard, io.Discard,
		func(context.Context) (*app.Components, error) {
			return components, nil
		})
	require.Equal(t, 1, exitCode)

	var record map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	// zerr errors log as nested groups.
	failure, ok := record["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "failed to load configuration", failure["msg"])
	assert.Equal(t, map[string]any{"msg": "could not find stitch.yaml"}, failure["cause"])
}
