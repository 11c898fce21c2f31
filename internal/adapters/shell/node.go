package shell

import (
	"context"
	"runtime"

	"github.com/grindlemire/graft"
	"go.trai.ch/svgmake/internal/core/domain"
	"go.trai.ch/svgmake/internal/core/ports"
)

// NodeID is the unique identifier for the shell dialect Graft node.
const NodeID graft.ID = "adapter.shell"

func init() {
	graft.Register(graft.Node[ports.Shell]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Shell, error) {
			return NewDialect(domain.PlatformFor(runtime.GOOS)), nil
		},
	})
}
