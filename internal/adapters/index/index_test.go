package index_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/lockstep/internal/adapters/index"
	"go.trai.ch/lockstep/internal/core/domain"
)

func TestChannelRecords(t *testing.T) {
	idx := index.New()
	idx.AddChannelRecords("main", domain.PlatformLinux64, []domain.RepoRecord{
		{Name: "python", Version: "3.11.0", Channel: "main", Platform: domain.PlatformLinux64},
	})
	idx.AddChannelRecords("main", domain.PlatformNoArch, []domain.RepoRecord{
		{Name: "tzdata", Version: "2024.1", Channel: "main", Platform: domain.PlatformNoArch},
	})

	records, err := idx.ChannelRecords(context.Background(), "main", domain.PlatformLinux64)
	require.NoError(t, err)

	// Platform records first, then noarch.
	require.Len(t, records, 2)
	require.Equal(t, "python", records[0].Name)
	require.Equal(t, "tzdata", records[1].Name)

	// A known channel with nothing for the platform is an empty pool.
	records, err = idx.ChannelRecords(context.Background(), "main", domain.PlatformOsxArm64)
	require.NoError(t, err)
	require.Len(t, records, 1) // noarch only

	_, err = idx.ChannelRecords(context.Background(), "ghost", domain.PlatformLinux64)
	require.ErrorIs(t, err, domain.ErrUnknownChannel)
}

func TestDistArtifacts(t *testing.T) {
	idx := index.New()
	artifact := domain.Artifact{URL: "https://d.example/a.whl", Kind: domain.ArtifactPrebuilt}
	idx.AddDistRelease("pkga", domain.DistArtifactRelease{Version: "1.0.0", Artifact: artifact}, domain.ArtifactMetadata{})

	releases, err := idx.DistArtifacts(context.Background(), "pkga")
	require.NoError(t, err)
	require.Len(t, releases, 1)

	// The returned slice is a copy; mutating it must not corrupt the index.
	releases[0].Version = "mutated"
	again, err := idx.DistArtifacts(context.Background(), "pkga")
	require.NoError(t, err)
	require.Equal(t, "1.0.0", again[0].Version)

	_, err = idx.DistArtifacts(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestFetchMetadata_CachesAndDeduplicates(t *testing.T) {
	idx := index.New()
	artifact := domain.Artifact{URL: "https://d.example/a.whl", Kind: domain.ArtifactPrebuilt}
	idx.AddDistRelease("pkga", domain.DistArtifactRelease{Version: "1.0.0", Artifact: artifact},
		domain.ArtifactMetadata{RequiresInterpreter: ">=3.8"})

	// Nothing cached before the first fetch.
	_, cached := idx.CachedMetadata(artifact)
	require.False(t, cached)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := idx.FetchMetadata(context.Background(), artifact)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, 1, idx.FetchCount(), "concurrent fetches of one artifact must coalesce")

	metadata, cached := idx.CachedMetadata(artifact)
	require.True(t, cached)
	require.Equal(t, ">=3.8", metadata.RequiresInterpreter)
}

func TestFetchMetadata_UnknownArtifact(t *testing.T) {
	idx := index.New()

	_, err := idx.FetchMetadata(context.Background(), domain.Artifact{URL: "https://d.example/ghost.whl"})
	require.ErrorIs(t, err, domain.ErrMetadataFetchFailed)
}

func TestStoreMetadata(t *testing.T) {
	idx := index.New()
	artifact := domain.Artifact{URL: "https://d.example/built.tar.gz", Kind: domain.ArtifactSource}

	idx.StoreMetadata(artifact, domain.ArtifactMetadata{RequiresDist: []string{"setuptools"}})

	metadata, cached := idx.CachedMetadata(artifact)
	require.True(t, cached)
	require.Equal(t, []string{"setuptools"}, metadata.RequiresDist)
	require.Zero(t, idx.FetchCount(), "out-of-band stores are not fetches")
}
