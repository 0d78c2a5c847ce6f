// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stitch/internal/adapters/cas"
	_ "go.trai.ch/stitch/internal/adapters/chunking"
	_ "go.trai.ch/stitch/internal/adapters/config"
	_ "go.trai.ch/stitch/internal/adapters/fs"
	_ "go.trai.ch/stitch/internal/adapters/logger"
	_ "go.trai.ch/stitch/internal/adapters/source"
	_ "go.trai.ch/stitch/internal/adapters/telemetry"
	_ "go.trai.ch/stitch/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/stitch/internal/app"
	_ "go.trai.ch/stitch/internal/engine/memo"
	_ "go.trai.ch/stitch/internal/engine/scheduler"
)
