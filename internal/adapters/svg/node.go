package svg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/svgmake/internal/core/ports"
)

// NodeID is the unique identifier for the SVG reference parser Graft node.
const NodeID graft.ID = "adapter.svg"

func init() {
	graft.Register(graft.Node[ports.ReferenceParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReferenceParser, error) {
			return NewParser(), nil
		},
	})
}
