package dist

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockstep/internal/adapters/builder" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/lockstep/internal/adapters/index"   //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/lockstep/internal/core/ports"
)

// NodeID is the unique identifier for the dist resolver Graft node.
const NodeID graft.ID = "adapter.dist"

func init() {
	graft.Register(graft.Node[ports.DistResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			index.NodeID,
			builder.NodeID,
		},
		Run: func(ctx context.Context) (ports.DistResolver, error) {
			pkgIndex, err := graft.Dep[ports.PackageIndex](ctx)
			if err != nil {
				return nil, err
			}

			srcBuilder, err := graft.Dep[ports.SourceBuilder](ctx)
			if err != nil {
				return nil, err
			}

			return New(pkgIndex, srcBuilder), nil
		},
	})
}
