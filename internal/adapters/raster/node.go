package raster

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/svgmake/internal/core/ports"
)

// NodeID is the unique identifier for the built-in renderer Graft node.
const NodeID graft.ID = "adapter.raster"

func init() {
	graft.Register(graft.Node[ports.ImageRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImageRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
