package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/svgmake/internal/adapters/archive"    //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/adapters/metadata"   //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/adapters/raster"     //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/adapters/rasterizer" //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/adapters/shell"      //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/adapters/sink"       //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/adapters/svg"        //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/svgmake/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			metadata.NodeID,
			rasterizer.NodeID,
			svg.NodeID,
			fs.WalkerNodeID,
			shell.NodeID,
			sink.NodeID,
			raster.NodeID,
			archive.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			meta, err := graft.Dep[ports.MetadataReader](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.RasterizerLocator](ctx)
			if err != nil {
				return nil, err
			}
			parser, err := graft.Dep[ports.ReferenceParser](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[ports.SourceWalker](ctx)
			if err != nil {
				return nil, err
			}
			sh, err := graft.Dep[ports.Shell](ctx)
			if err != nil {
				return nil, err
			}
			scriptSink, err := graft.Dep[ports.ScriptSink](ctx)
			if err != nil {
				return nil, err
			}
			renderer, err := graft.Dep[ports.ImageRenderer](ctx)
			if err != nil {
				return nil, err
			}
			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, meta, locator, parser, walker, sh, scriptSink, renderer, archiver, w, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}
