// Package app implements the application layer for lockstep.
package app

import (
	"context"

	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/lockstep/internal/core/ports"
	"go.trai.ch/lockstep/internal/engine/resolve"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic: it orchestrates the resolve
// engine across every target platform and assembles the lockfile.
type App struct {
	loader   ports.ManifestLoader
	resolver *resolve.Resolver
	index    ports.PackageIndex
	writer   ports.LockfileWriter
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ManifestLoader,
	resolver *resolve.Resolver,
	index ports.PackageIndex,
	writer ports.LockfileWriter,
	logger ports.Logger,
) *App {
	return &App{
		loader:   loader,
		resolver: resolver,
		index:    index,
		writer:   writer,
		logger:   logger,
	}
}

// Lock resolves the manifest in cwd for every declared platform and returns
// the assembled lockfile. Platforms resolve concurrently; each platform is
// self-contained and only shares read access to the package index.
func (a *App) Lock(ctx context.Context, cwd string) (*domain.Lockfile, error) {
	manifest, err := a.loader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	environments := make([]domain.Environment, len(manifest.Platforms))

	g, ctx := errgroup.WithContext(ctx)
	for i, platform := range manifest.Platforms {
		g.Go(func() error {
			environment, err := a.lockPlatform(ctx, manifest, platform)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrLockFailed.Error()), "platform", string(platform))
			}
			environments[i] = environment
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lockfile := &domain.Lockfile{
		Version:      domain.LockfileVersion,
		Environments: environments,
	}
	if err := a.writer.Write(cwd, lockfile); err != nil {
		return nil, err
	}

	a.logger.Info("resolved " + manifest.Name + " for all platforms")
	return lockfile, nil
}

// lockPlatform resolves one platform: channel solve first, then dist
// resolution with the solved channel set as context (e.g. the interpreter).
func (a *App) lockPlatform(
	ctx context.Context,
	manifest *domain.Manifest,
	platform domain.Platform,
) (domain.Environment, error) {
	pools := make([][]domain.RepoRecord, 0, len(manifest.Channels))
	for _, channel := range manifest.Channels {
		records, err := a.index.ChannelRecords(ctx, channel, platform)
		if err != nil {
			return domain.Environment{}, err
		}
		pools = append(pools, records)
	}

	virtual := append(domain.BaselineVirtualCapabilities(platform), manifest.VirtualPackages...)

	channelLocked, err := a.resolver.ResolveChannel(ctx, domain.SolverTask{
		Specs:           manifest.ChannelSpecs,
		VirtualPackages: virtual,
		Pools:           pools,
	})
	if err != nil {
		return domain.Environment{}, err
	}

	distLocked, err := a.resolver.ResolveDist(ctx, ports.DistResolveRequest{
		Requirements:          manifest.DistRequirements,
		SystemRequirements:    manifest.SystemRequirements,
		Platform:              platform,
		LockedChannelPackages: channelLocked,
		InterpreterPath:       manifest.InterpreterPath,
		BuildPolicy:           manifest.BuildPolicy,
		BuildEnv:              manifest.BuildEnv,
	})
	if err != nil {
		return domain.Environment{}, err
	}

	return domain.Environment{
		Platform: platform,
		Channel:  channelLocked,
		Dist:     distLocked,
	}, nil
}
