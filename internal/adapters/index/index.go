// Package index implements the PackageIndex port: an in-memory package index
// with a write-through, fetch-deduplicated artifact metadata cache.
//
// Channel pools and dist artifact listings can be seeded programmatically or
// loaded from a local index directory. Metadata lives in two layers: the
// remote layer (what a fetch would return) and the cache layer (what has been
// fetched). Resolvers must go through FetchMetadata so the cache reflects
// exactly the work done during solving.
package index

import (
	"context"
	"sync"

	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Index implements ports.PackageIndex.
type Index struct {
	mu       sync.RWMutex
	channels map[string]map[domain.Platform][]domain.RepoRecord
	dists    map[string][]domain.DistArtifactRelease
	remote   map[string]domain.ArtifactMetadata
	cache    map[string]domain.ArtifactMetadata

	requestGroup singleflight.Group
	fetchCount   int
}

// New creates an empty index.
func New() *Index {
	return &Index{
		channels: make(map[string]map[domain.Platform][]domain.RepoRecord),
		dists:    make(map[string][]domain.DistArtifactRelease),
		remote:   make(map[string]domain.ArtifactMetadata),
		cache:    make(map[string]domain.ArtifactMetadata),
	}
}

// AddChannelRecords appends candidate records to one channel's pool for one
// platform, preserving insertion order.
func (i *Index) AddChannelRecords(channel string, platform domain.Platform, records []domain.RepoRecord) {
	i.mu.Lock()
	defer i.mu.Unlock()

	platforms, ok := i.channels[channel]
	if !ok {
		platforms = make(map[domain.Platform][]domain.RepoRecord)
		i.channels[channel] = platforms
	}
	platforms[platform] = append(platforms[platform], records...)
}

// AddDistRelease registers one artifact of a dist package release together
// with the metadata a fetch of that artifact would return.
func (i *Index) AddDistRelease(
	name string,
	release domain.DistArtifactRelease,
	metadata domain.ArtifactMetadata,
) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.dists[name] = append(i.dists[name], release)
	i.remote[release.Artifact.URL] = metadata
}

// ChannelRecords returns the candidate pool of one channel for one platform.
// Unknown channels error; a known channel with no records for the platform
// yields an empty pool.
func (i *Index) ChannelRecords(
	_ context.Context,
	channel string,
	platform domain.Platform,
) ([]domain.RepoRecord, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	platforms, ok := i.channels[channel]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownChannel, "channel", channel)
	}

	// Platform-independent packages are visible on every platform.
	records := make([]domain.RepoRecord, 0, len(platforms[platform])+len(platforms[domain.PlatformNoArch]))
	records = append(records, platforms[platform]...)
	if platform != domain.PlatformNoArch {
		records = append(records, platforms[domain.PlatformNoArch]...)
	}
	return records, nil
}

// DistArtifacts returns every known artifact of the named dist package.
func (i *Index) DistArtifacts(_ context.Context, name string) ([]domain.DistArtifactRelease, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	releases, ok := i.dists[name]
	if !ok {
		return nil, zerr.With(domain.ErrPackageNotFound, "package", name)
	}
	out := make([]domain.DistArtifactRelease, len(releases))
	copy(out, releases)
	return out, nil
}

// FetchMetadata returns the metadata of the given artifact, fetching into the
// cache if absent. Concurrent fetches of the same artifact are coalesced, so
// cache population is idempotent.
func (i *Index) FetchMetadata(_ context.Context, artifact domain.Artifact) (domain.ArtifactMetadata, error) {
	i.mu.RLock()
	cached, ok := i.cache[artifact.URL]
	i.mu.RUnlock()
	if ok {
		return cached, nil
	}

	result, err, _ := i.requestGroup.Do(artifact.URL, func() (any, error) {
		i.mu.Lock()
		defer i.mu.Unlock()

		// Another flight may have populated the cache in the meantime.
		if cached, ok := i.cache[artifact.URL]; ok {
			return cached, nil
		}

		metadata, ok := i.remote[artifact.URL]
		if !ok {
			return domain.ArtifactMetadata{}, zerr.With(domain.ErrMetadataFetchFailed, "url", artifact.URL)
		}
		i.fetchCount++
		i.cache[artifact.URL] = metadata
		return metadata, nil
	})
	if err != nil {
		return domain.ArtifactMetadata{}, err
	}
	return result.(domain.ArtifactMetadata), nil
}

// StoreMetadata populates the cache with metadata obtained out of band.
func (i *Index) StoreMetadata(artifact domain.Artifact, metadata domain.ArtifactMetadata) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.cache[artifact.URL] = metadata
}

// CachedMetadata returns the cached metadata of the given artifact without
// fetching.
func (i *Index) CachedMetadata(artifact domain.Artifact) (domain.ArtifactMetadata, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	metadata, ok := i.cache[artifact.URL]
	return metadata, ok
}

// SourceMetadata returns the metadata shipped alongside a source archive
// without touching the cache. The builder adapter uses this as its stand-in
// for metadata extraction.
func (i *Index) SourceMetadata(artifact domain.Artifact) (domain.ArtifactMetadata, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	metadata, ok := i.remote[artifact.URL]
	return metadata, ok
}
