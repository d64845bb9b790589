// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/repute/internal/adapters/config"
	_ "go.trai.ch/repute/internal/adapters/logger"
	_ "go.trai.ch/repute/internal/adapters/telemetry"
	_ "go.trai.ch/repute/internal/adapters/theme"
	_ "go.trai.ch/repute/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/repute/internal/app"
)
