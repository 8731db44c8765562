package solver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockstep/internal/core/ports"
)

// NodeID is the unique identifier for the channel solver Graft node.
const NodeID graft.ID = "adapter.solver"

func init() {
	graft.Register(graft.Node[ports.ChannelSolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ChannelSolver, error) {
			return New(), nil
		},
	})
}
