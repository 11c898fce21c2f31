// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/svgmake/internal/adapters/archive"
	_ "go.trai.ch/svgmake/internal/adapters/config"
	_ "go.trai.ch/svgmake/internal/adapters/fs"
	_ "go.trai.ch/svgmake/internal/adapters/logger"
	_ "go.trai.ch/svgmake/internal/adapters/metadata"
	_ "go.trai.ch/svgmake/internal/adapters/raster"
	_ "go.trai.ch/svgmake/internal/adapters/rasterizer"
	_ "go.trai.ch/svgmake/internal/adapters/shell"
	_ "go.trai.ch/svgmake/internal/adapters/sink"
	_ "go.trai.ch/svgmake/internal/adapters/svg"
	_ "go.trai.ch/svgmake/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/svgmake/internal/app"
)
