package lockfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/lockstep/internal/adapters/lockfile"
	"go.trai.ch/lockstep/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func TestWriter_Write(t *testing.T) {
	dir := t.TempDir()
	lf := &domain.Lockfile{
		Version: domain.LockfileVersion,
		Environments: []domain.Environment{
			{
				Platform: domain.PlatformLinux64,
				Channel: domain.LockedChannelPackages{
					{
						Name:    "python",
						Version: "3.11.0",
						Channel: "main",
						URL:     "https://c.example/main/python-3.11.0.pkg",
						Sha256:  "abc",
						Depends: []string{"openssl >=3.0"},
					},
				},
				Dist: domain.LockedDistPackages{
					{
						Package: domain.LockedDistPackage{
							Name:    "requests",
							Version: "2.31.0",
							URL:     "https://d.example/requests-2.31.0.whl",
							Hash:    &domain.PackageHash{Algorithm: "sha256", Digest: "def"},
						},
						Environment: domain.DistEnvironmentData{Extras: []string{"socks"}},
					},
				},
			},
		},
	}

	require.NoError(t, lockfile.NewWriter().Write(dir, lf))

	data, err := os.ReadFile(filepath.Join(dir, lockfile.DefaultFilename))
	require.NoError(t, err)

	var decoded struct {
		Version      int `yaml:"version"`
		Environments []struct {
			Platform string `yaml:"platform"`
			Channel  []struct {
				Name   string `yaml:"name"`
				Sha256 string `yaml:"sha256"`
			} `yaml:"channel"`
			Dist []struct {
				Name string `yaml:"name"`
				Hash *struct {
					Algorithm string `yaml:"algorithm"`
					Digest    string `yaml:"digest"`
				} `yaml:"hash"`
				Extras []string `yaml:"extras"`
			} `yaml:"dist"`
		} `yaml:"environments"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	require.Equal(t, domain.LockfileVersion, decoded.Version)
	require.Len(t, decoded.Environments, 1)
	require.Equal(t, "linux-64", decoded.Environments[0].Platform)
	require.Equal(t, "python", decoded.Environments[0].Channel[0].Name)
	require.Equal(t, "abc", decoded.Environments[0].Channel[0].Sha256)
	require.Equal(t, "requests", decoded.Environments[0].Dist[0].Name)
	require.NotNil(t, decoded.Environments[0].Dist[0].Hash)
	require.Equal(t, "def", decoded.Environments[0].Dist[0].Hash.Digest)
	require.Equal(t, []string{"socks"}, decoded.Environments[0].Dist[0].Extras)
}

func TestWriter_Overwrites(t *testing.T) {
	dir := t.TempDir()
	w := lockfile.NewWriter()

	require.NoError(t, w.Write(dir, &domain.Lockfile{Version: 1, Environments: []domain.Environment{
		{Platform: domain.PlatformLinux64}, {Platform: domain.PlatformWin64},
	}}))
	require.NoError(t, w.Write(dir, &domain.Lockfile{Version: 1, Environments: []domain.Environment{
		{Platform: domain.PlatformLinux64},
	}}))

	data, err := os.ReadFile(filepath.Join(dir, lockfile.DefaultFilename))
	require.NoError(t, err)
	require.NotContains(t, string(data), "win-64")
}

func TestWriter_UnwritableDir(t *testing.T) {
	err := lockfile.NewWriter().Write(filepath.Join(t.TempDir(), "missing"), &domain.Lockfile{Version: 1})
	require.Error(t, err)
}
