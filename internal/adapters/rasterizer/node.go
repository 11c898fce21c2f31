package rasterizer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/svgmake/internal/adapters/shell"
	"go.trai.ch/svgmake/internal/core/ports"
)

// NodeID is the unique identifier for the rasterizer locator Graft node.
const NodeID graft.ID = "adapter.rasterizer"

func init() {
	graft.Register(graft.Node[ports.RasterizerLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.RasterizerLocator, error) {
			sh, err := graft.Dep[ports.Shell](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(sh, HostSystem()), nil
		},
	})
}
