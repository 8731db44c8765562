package ports

import (
	"context"

	"go.trai.ch/lockstep/internal/core/domain"
)

// PackageIndex is the package index and metadata cache shared by all
// resolution calls.
//
// Implementations must tolerate concurrent readers and deduplicate concurrent
// fetches of the same artifact: cache population is idempotent. The resolve
// engine's "already fetched" invariant depends on this.
//
//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=mocks/mock_index.go -package=mocks
type PackageIndex interface {
	// ChannelRecords returns the candidate pool of one channel for one
	// platform, in index order.
	ChannelRecords(ctx context.Context, channel string, platform domain.Platform) ([]domain.RepoRecord, error)

	// DistArtifacts returns every known artifact of the named dist package
	// across all its releases, in index order.
	DistArtifacts(ctx context.Context, name string) ([]domain.DistArtifactRelease, error)

	// FetchMetadata returns the metadata of the given artifact, fetching and
	// caching it if absent. Concurrent fetches for the same artifact are
	// coalesced.
	FetchMetadata(ctx context.Context, artifact domain.Artifact) (domain.ArtifactMetadata, error)

	// StoreMetadata populates the cache with metadata obtained out of band
	// (e.g. extracted by a source build). Idempotent.
	StoreMetadata(artifact domain.Artifact, metadata domain.ArtifactMetadata)

	// CachedMetadata returns the cached metadata of the given artifact
	// without fetching. The second return is false on a cache miss.
	CachedMetadata(artifact domain.Artifact) (domain.ArtifactMetadata, bool)
}
