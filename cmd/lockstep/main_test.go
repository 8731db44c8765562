package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/lockstep/internal/adapters/builder"
	"go.trai.ch/lockstep/internal/adapters/dist"
	"go.trai.ch/lockstep/internal/adapters/index"
	"go.trai.ch/lockstep/internal/adapters/lockfile"
	"go.trai.ch/lockstep/internal/adapters/solver"
	"go.trai.ch/lockstep/internal/adapters/telemetry"
	"go.trai.ch/lockstep/internal/app"
	"go.trai.ch/lockstep/internal/core/ports/mocks"
	"go.trai.ch/lockstep/internal/engine/resolve"
	"go.uber.org/mock/gomock"
)

func testProvider(t *testing.T) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockManifestLoader(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	idx := index.New()
	resolver := resolve.New(solver.New(), dist.New(idx, builder.New(idx)), idx, telemetry.NewNoop())
	application := app.New(loader, resolver, idx, lockfile.NewWriter(), logger)

	return func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:       application,
			Logger:    logger,
			Telemetry: telemetry.NewNoop(),
		}, func() {}, nil
	}
}

func TestRun_Version(t *testing.T) {
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stderr, testProvider(t))
	require.Equal(t, 0, exitCode)
}

func TestRun_UnknownCommand(t *testing.T) {
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"frobnicate"}, stderr, testProvider(t))
	require.Equal(t, 1, exitCode)
}

func TestRun_ProviderFailure(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	exitCode := run(context.Background(), nil, stderr, provider)
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "wiring failed")
}
