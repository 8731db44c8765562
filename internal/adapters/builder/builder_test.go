package builder_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/lockstep/internal/adapters/builder"
	"go.trai.ch/lockstep/internal/adapters/index"
	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/lockstep/internal/core/ports"
)

func TestBuild_ExtractsMetadata(t *testing.T) {
	idx := index.New()
	src := domain.Artifact{
		URL:      "https://d.example/pkga-1.0.0.tar.gz",
		Kind:     domain.ArtifactSource,
		Platform: domain.PlatformNoArch,
	}
	idx.AddDistRelease("pkga", domain.DistArtifactRelease{Version: "1.0.0", Artifact: src},
		domain.ArtifactMetadata{RequiresDist: []string{"setuptools"}})

	b := builder.New(idx)
	metadata, err := b.Build(context.Background(), ports.BuildRequest{
		Name:    "pkga",
		Version: "1.0.0",
		Source:  src,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"setuptools"}, metadata.RequiresDist)

	// Builds are deterministic: same request, same metadata.
	again, err := b.Build(context.Background(), ports.BuildRequest{Name: "pkga", Version: "1.0.0", Source: src})
	require.NoError(t, err)
	require.Equal(t, metadata, again)
}

func TestBuild_RejectsPrebuilt(t *testing.T) {
	b := builder.New(index.New())

	_, err := b.Build(context.Background(), ports.BuildRequest{
		Source: domain.Artifact{URL: "https://d.example/pkga.whl", Kind: domain.ArtifactPrebuilt},
	})
	require.ErrorIs(t, err, domain.ErrNotSourceArtifact)
}

func TestBuild_UnknownSourceFails(t *testing.T) {
	b := builder.New(index.New())

	_, err := b.Build(context.Background(), ports.BuildRequest{
		Name:    "ghost",
		Version: "1.0.0",
		Source:  domain.Artifact{URL: "https://d.example/ghost.tar.gz", Kind: domain.ArtifactSource},
	})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}
