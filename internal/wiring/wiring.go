// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lockstep/internal/adapters/builder"
	_ "go.trai.ch/lockstep/internal/adapters/config"
	_ "go.trai.ch/lockstep/internal/adapters/dist"
	_ "go.trai.ch/lockstep/internal/adapters/index"
	_ "go.trai.ch/lockstep/internal/adapters/lockfile"
	_ "go.trai.ch/lockstep/internal/adapters/logger"
	_ "go.trai.ch/lockstep/internal/adapters/solver"
	_ "go.trai.ch/lockstep/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/lockstep/internal/app"
	_ "go.trai.ch/lockstep/internal/engine/resolve"
)
