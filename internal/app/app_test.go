package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/require"
	"go.trai.ch/lockstep/internal/adapters/builder"
	"go.trai.ch/lockstep/internal/adapters/dist"
	"go.trai.ch/lockstep/internal/adapters/index"
	"go.trai.ch/lockstep/internal/adapters/lockfile"
	"go.trai.ch/lockstep/internal/adapters/solver"
	"go.trai.ch/lockstep/internal/adapters/telemetry"
	"go.trai.ch/lockstep/internal/app"
	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/lockstep/internal/core/ports/mocks"
	"go.trai.ch/lockstep/internal/engine/resolve"
	"go.uber.org/mock/gomock"
)

func seedIndex(t *testing.T) *index.Index {
	t.Helper()
	idx := index.New()
	for _, platform := range []domain.Platform{domain.PlatformLinux64, domain.PlatformOsxArm64} {
		idx.AddChannelRecords("main", platform, []domain.RepoRecord{
			{
				Name: "python", Version: "3.11.0", Channel: "main", Platform: platform,
				URL:     "https://c.example/main/python-3.11.0-" + string(platform) + ".pkg",
				Depends: []string{"openssl >=3.0"},
			},
			{
				Name: "openssl", Version: "3.1.0", Channel: "main", Platform: platform,
				URL: "https://c.example/main/openssl-3.1.0-" + string(platform) + ".pkg",
			},
		})
	}
	idx.AddDistRelease("requests", domain.DistArtifactRelease{
		Version: "2.31.0",
		Artifact: domain.Artifact{
			URL:      "https://d.example/requests-2.31.0.whl",
			Kind:     domain.ArtifactPrebuilt,
			Platform: domain.PlatformNoArch,
			Digests:  map[string]string{"sha256": "def"},
		},
	}, domain.ArtifactMetadata{RequiresInterpreter: ">=3.7"})
	return idx
}

func demoManifest() *domain.Manifest {
	return &domain.Manifest{
		Name:      "demo",
		Platforms: []domain.Platform{domain.PlatformLinux64, domain.PlatformOsxArm64},
		Channels:  []string{"main"},
		ChannelSpecs: []domain.MatchSpec{
			domain.MustParseMatchSpec("python >=3.10"),
		},
		DistRequirements: []domain.MatchSpec{
			domain.MustParseMatchSpec("requests >=2.0"),
		},
		BuildPolicy: domain.BuildIfNeeded,
	}
}

func TestLock_EndToEnd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		idx := seedIndex(t)

		loader := mocks.NewMockManifestLoader(ctrl)
		logger := mocks.NewMockLogger(ctrl)
		logger.EXPECT().Info(gomock.Any()).AnyTimes()

		dir := t.TempDir()
		loader.EXPECT().Load(dir).Return(demoManifest(), nil).Times(1)

		resolver := resolve.New(
			solver.New(),
			dist.New(idx, builder.New(idx)),
			idx,
			telemetry.NewNoop(),
		)
		a := app.New(loader, resolver, idx, lockfile.NewWriter(), logger)

		locked, err := a.Lock(context.Background(), dir)
		require.NoError(t, err)
		require.Equal(t, domain.LockfileVersion, locked.Version)
		require.Len(t, locked.Environments, 2)

		// Environments follow manifest platform order regardless of which
		// platform finished first.
		require.Equal(t, domain.PlatformLinux64, locked.Environments[0].Platform)
		require.Equal(t, domain.PlatformOsxArm64, locked.Environments[1].Platform)

		for _, env := range locked.Environments {
			_, ok := env.Channel.Find("python")
			require.True(t, ok)
			_, ok = env.Channel.Find("openssl")
			require.True(t, ok, "transitive channel deps are locked")
			require.Len(t, env.Dist, 1)
			require.Equal(t, "requests", env.Dist[0].Package.Name)
			require.NotNil(t, env.Dist[0].Package.Hash)
		}

		// The lockfile landed on disk.
		_, err = os.Stat(filepath.Join(dir, lockfile.DefaultFilename))
		require.NoError(t, err)
	})
}

func TestLock_ManifestLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockManifestLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrManifestReadFailed).Times(1)

	idx := index.New()
	resolver := resolve.New(solver.New(), dist.New(idx, builder.New(idx)), idx, telemetry.NewNoop())
	a := app.New(loader, resolver, idx, lockfile.NewWriter(), mocks.NewMockLogger(ctrl))

	_, err := a.Lock(context.Background(), t.TempDir())
	require.ErrorIs(t, err, domain.ErrManifestReadFailed)
}

func TestLock_PlatformFailureFailsLock(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		idx := seedIndex(t)

		manifest := demoManifest()
		manifest.ChannelSpecs = []domain.MatchSpec{
			domain.MustParseMatchSpec("python >=4.0"),
		}

		dir := t.TempDir()
		loader := mocks.NewMockManifestLoader(ctrl)
		loader.EXPECT().Load(dir).Return(manifest, nil).Times(1)

		// No Write expectation: a failed platform must not produce a lockfile.
		writer := mocks.NewMockLockfileWriter(ctrl)

		resolver := resolve.New(solver.New(), dist.New(idx, builder.New(idx)), idx, telemetry.NewNoop())
		a := app.New(loader, resolver, idx, writer, mocks.NewMockLogger(ctrl))

		_, err := a.Lock(context.Background(), dir)
		require.ErrorIs(t, err, domain.ErrLockFailed)

		var conflict *domain.Conflict
		require.ErrorAs(t, err, &conflict)
		require.Equal(t, "python", conflict.Name)
	})
}
