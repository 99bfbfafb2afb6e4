// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pin/internal/adapters/cas"
	_ "go.trai.ch/pin/internal/adapters/config"
	_ "go.trai.ch/pin/internal/adapters/logger"
	_ "go.trai.ch/pin/internal/adapters/pom"
	_ "go.trai.ch/pin/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/pin/internal/app"
	_ "go.trai.ch/pin/internal/engine/manager"
)
