// Package builder provides the source build collaborator. A real
// implementation would invoke the ecosystem's build backend in an isolated
// environment; this one runs the only part resolution needs, extracting the
// metadata the index ships alongside each source archive. It is deterministic:
// identical requests always yield identical metadata.
package builder

import (
	"context"

	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/lockstep/internal/core/ports"
	"go.trai.ch/zerr"
)

// MetadataSource exposes the declared metadata of source archives.
// *index.Index implements it.
type MetadataSource interface {
	SourceMetadata(artifact domain.Artifact) (domain.ArtifactMetadata, bool)
}

// Builder implements ports.SourceBuilder.
type Builder struct {
	source MetadataSource
}

// New creates a new source builder reading metadata from the given source.
func New(source MetadataSource) *Builder {
	return &Builder{source: source}
}

// Build extracts the declared metadata of the given source archive.
func (b *Builder) Build(_ context.Context, req ports.BuildRequest) (domain.ArtifactMetadata, error) {
	if req.Source.Kind != domain.ArtifactSource {
		return domain.ArtifactMetadata{}, zerr.With(domain.ErrNotSourceArtifact, "url", req.Source.URL)
	}

	metadata, ok := b.source.SourceMetadata(req.Source)
	if !ok {
		err := zerr.With(domain.ErrBuildFailed, "package", req.Name)
		err = zerr.With(err, "version", req.Version)
		err = zerr.With(err, "url", req.Source.URL)
		return domain.ArtifactMetadata{}, err
	}
	return metadata, nil
}
