package resolve

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockstep/internal/adapters/dist"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lockstep/internal/adapters/index"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lockstep/internal/adapters/solver"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lockstep/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lockstep/internal/core/ports"
)

// NodeID is the unique identifier for the resolve engine Graft node.
const NodeID graft.ID = "engine.resolve"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			solver.NodeID,
			dist.NodeID,
			index.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			channelSolver, err := graft.Dep[ports.ChannelSolver](ctx)
			if err != nil {
				return nil, err
			}

			distResolver, err := graft.Dep[ports.DistResolver](ctx)
			if err != nil {
				return nil, err
			}

			pkgIndex, err := graft.Dep[ports.PackageIndex](ctx)
			if err != nil {
				return nil, err
			}

			telemetryPort, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(channelSolver, distResolver, pkgIndex, telemetryPort), nil
		},
	})
}
