package domain

import (
	semver "github.com/Masterminds/semver/v3"
)

// Platform identifies a resolution target (OS plus architecture).
type Platform string

const (
	// PlatformLinux64 is x86_64 Linux.
	PlatformLinux64 Platform = "linux-64"
	// PlatformLinuxAarch64 is ARM64 Linux.
	PlatformLinuxAarch64 Platform = "linux-aarch64"
	// PlatformOsx64 is x86_64 macOS.
	PlatformOsx64 Platform = "osx-64"
	// PlatformOsxArm64 is ARM64 macOS.
	PlatformOsxArm64 Platform = "osx-arm64"
	// PlatformWin64 is x86_64 Windows.
	PlatformWin64 Platform = "win-64"
	// PlatformNoArch marks platform-independent packages and artifacts.
	PlatformNoArch Platform = "noarch"
)

// VirtualCapability is a platform-provided capability the solver treats as
// satisfied without a real package (e.g. the baseline OS ABI).
type VirtualCapability struct {
	Name    string
	Version string
}

// SystemRequirements declares minimum platform capabilities for a resolve,
// keyed by capability name (e.g. the minimum interpreter version).
type SystemRequirements map[string]string

// Minimum returns the declared minimum version for the named capability.
func (s SystemRequirements) Minimum(name string) (*semver.Version, bool) {
	raw, ok := s[name]
	if !ok {
		return nil, false
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, false
	}
	return v, true
}

// BaselineVirtualCapabilities returns the virtual capabilities every resolve
// can assume for the given platform. A real deployment would probe the host;
// these baselines keep cross-platform locking deterministic.
func BaselineVirtualCapabilities(platform Platform) []VirtualCapability {
	switch platform {
	case PlatformLinux64, PlatformLinuxAarch64:
		return []VirtualCapability{
			{Name: "__unix", Version: "0"},
			{Name: "__linux", Version: "5.10.0"},
			{Name: "__glibc", Version: "2.17.0"},
		}
	case PlatformOsx64, PlatformOsxArm64:
		return []VirtualCapability{
			{Name: "__unix", Version: "0"},
			{Name: "__osx", Version: "11.0.0"},
		}
	case PlatformWin64:
		return []VirtualCapability{
			{Name: "__win", Version: "0"},
		}
	default:
		return nil
	}
}
