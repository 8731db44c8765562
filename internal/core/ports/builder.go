package ports

import (
	"context"

	"go.trai.ch/lockstep/internal/core/domain"
)

// BuildRequest describes one source build needed during dist resolution.
type BuildRequest struct {
	Name    string
	Version string

	// Source is the source archive to build. Its kind is always
	// domain.ArtifactSource.
	Source domain.Artifact

	// Platform is the resolution target the build product must install on.
	Platform domain.Platform

	// InterpreterPath optionally points at a locally available interpreter.
	InterpreterPath string

	// Env holds environment variables injected into the build step.
	Env map[string]string
}

// SourceBuilder turns a source archive into its declared metadata by running
// the ecosystem's build step far enough to extract it. Build execution itself
// is this collaborator's responsibility; the resolver only requests it.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type SourceBuilder interface {
	// Build runs the build step for the given source archive and returns the
	// extracted metadata. Identical requests yield identical metadata.
	Build(ctx context.Context, req BuildRequest) (domain.ArtifactMetadata, error)
}
