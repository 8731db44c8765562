package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/lockstep/internal/adapters/config"
	"go.trai.ch/lockstep/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return dir
}

func TestLoad_Success(t *testing.T) {
	dir := writeManifest(t, `
name: demo
platforms:
  - linux-64
  - osx-arm64
channels:
  - main
  - forge
system-requirements:
  python: "3.10"
virtual-packages:
  __cuda: "12.0"
dependencies:
  python: ">=3.10, <3.13"
  numpy:
    version: ">=1.24"
    channel: forge
dist-dependencies:
  requests:
    version: ">=2.31"
    extras: [socks, security]
  rich: ""
build-policy: never
build-env:
  CFLAGS: "-O2"
interpreter-path: /usr/bin/python3
`)

	manifest, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	require.Equal(t, "demo", manifest.Name)
	require.Equal(t, []domain.Platform{domain.PlatformLinux64, domain.PlatformOsxArm64}, manifest.Platforms)
	require.Equal(t, []string{"main", "forge"}, manifest.Channels)
	require.Equal(t, domain.BuildNever, manifest.BuildPolicy)
	require.Equal(t, "/usr/bin/python3", manifest.InterpreterPath)
	require.Equal(t, "-O2", manifest.BuildEnv["CFLAGS"])
	require.Equal(t, []domain.VirtualCapability{{Name: "__cuda", Version: "12.0"}}, manifest.VirtualPackages)

	// Declaration order survives the round trip.
	require.Len(t, manifest.ChannelSpecs, 2)
	require.Equal(t, "python", manifest.ChannelSpecs[0].Name)
	require.Equal(t, ">=3.10, <3.13", manifest.ChannelSpecs[0].Constraint)
	require.Equal(t, "numpy", manifest.ChannelSpecs[1].Name)
	require.Equal(t, "forge", manifest.ChannelSpecs[1].Channel)

	require.Len(t, manifest.DistRequirements, 2)
	require.Equal(t, "requests", manifest.DistRequirements[0].Name)
	require.Equal(t, []domain.Extra{"socks", "security"}, manifest.DistRequirements[0].Extras)
	require.Equal(t, "rich", manifest.DistRequirements[1].Name)
	require.Empty(t, manifest.DistRequirements[1].Constraint)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.NewLoader().Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrManifestReadFailed)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeManifest(t, "name: [broken")
	_, err := config.NewLoader().Load(dir)
	require.ErrorIs(t, err, domain.ErrManifestParseFailed)
}

func TestLoad_NoPlatforms(t *testing.T) {
	dir := writeManifest(t, `
name: demo
channels: [main]
dependencies:
  python: ">=3.10"
`)
	_, err := config.NewLoader().Load(dir)
	require.ErrorIs(t, err, domain.ErrNoPlatforms)
}

func TestLoad_InvalidSpec(t *testing.T) {
	dir := writeManifest(t, `
name: demo
platforms: [linux-64]
channels: [main]
dependencies:
  python: ">=not.a.version"
`)
	_, err := config.NewLoader().Load(dir)
	require.ErrorIs(t, err, domain.ErrInvalidMatchSpec)
}

func TestLoad_InvalidBuildPolicy(t *testing.T) {
	dir := writeManifest(t, `
name: demo
platforms: [linux-64]
channels: [main]
build-policy: sometimes
`)
	_, err := config.NewLoader().Load(dir)
	require.ErrorIs(t, err, domain.ErrInvalidBuildPolicy)
}

func TestLoad_VirtualPackagesSorted(t *testing.T) {
	dir := writeManifest(t, `
name: demo
platforms: [linux-64]
channels: [main]
virtual-packages:
  __zzz: "1"
  __aaa: "2"
`)
	manifest, err := config.NewLoader().Load(dir)
	require.NoError(t, err)
	require.Equal(t, []domain.VirtualCapability{
		{Name: "__aaa", Version: "2"},
		{Name: "__zzz", Version: "1"},
	}, manifest.VirtualPackages)
}
