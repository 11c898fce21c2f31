package sink

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/svgmake/internal/core/ports"
)

// NodeID is the unique identifier for the script sink Graft node.
const NodeID graft.ID = "adapter.sink"

func init() {
	graft.Register(graft.Node[ports.ScriptSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScriptSink, error) {
			return NewStore(), nil
		},
	})
}
