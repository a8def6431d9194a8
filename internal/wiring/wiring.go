// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pinfile/internal/adapters/fs"
	_ "go.trai.ch/pinfile/internal/adapters/logger"
	_ "go.trai.ch/pinfile/internal/adapters/telemetry"
	_ "go.trai.ch/pinfile/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/pinfile/internal/app"
)
