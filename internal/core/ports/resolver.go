package ports

import (
	"context"

	"go.trai.ch/lockstep/internal/core/domain"
)

// DistResolveRequest carries every input of one dist resolution.
type DistResolveRequest struct {
	// Requirements holds the dist dependency specs in declaration order.
	// Multiple entries may share a name when declared by different sources.
	Requirements []domain.MatchSpec

	// SystemRequirements declares minimum platform capabilities.
	SystemRequirements domain.SystemRequirements

	// Platform is the resolution target.
	Platform domain.Platform

	// LockedChannelPackages is the already-solved channel set, used as
	// resolution context (e.g. to pin the interpreter version for
	// compatibility filtering).
	LockedChannelPackages domain.LockedChannelPackages

	// InterpreterPath optionally points at a locally available interpreter
	// for source builds.
	InterpreterPath string

	// BuildPolicy controls whether source-only distributions are built.
	BuildPolicy domain.SourceBuildPolicy

	// BuildEnv holds environment variables injected into any build step.
	BuildEnv map[string]string
}

// DistResolver is the source/binary-ecosystem resolution engine.
//
// Implementations guarantee that metadata for every returned candidate's
// artifact is resident in the package index cache by the time Resolve
// returns: compatibility filtering must fetch it through the index.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DistResolver interface {
	// Resolve returns the ordered list of chosen candidates, or a diagnostic
	// error when the requirements cannot be satisfied. Build failures surface
	// as resolution failures, never as partial successes. Same inputs yield
	// the same candidates and the same build-or-not decisions.
	Resolve(ctx context.Context, req DistResolveRequest) ([]domain.DistCandidate, error)
}
