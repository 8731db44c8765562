package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lockstep/internal/adapters/index" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/lockstep/internal/core/ports"
)

// NodeID is the unique identifier for the source builder Graft node.
const NodeID graft.ID = "adapter.builder"

func init() {
	graft.Register(graft.Node[ports.SourceBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{index.NodeID},
		Run: func(ctx context.Context) (ports.SourceBuilder, error) {
			pkgIndex, err := graft.Dep[ports.PackageIndex](ctx)
			if err != nil {
				return nil, err
			}

			source, ok := pkgIndex.(MetadataSource)
			if !ok {
				// Fall back to an empty source; every build then fails with
				// a diagnosable error instead of a wiring panic.
				source = emptySource{}
			}
			return New(source), nil
		},
	})
}

type emptySource struct{}

func (emptySource) SourceMetadata(_ domain.Artifact) (domain.ArtifactMetadata, bool) {
	return domain.ArtifactMetadata{}, false
}
