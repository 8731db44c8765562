package domain

import "go.trai.ch/zerr"

// SourceBuildPolicy controls how source-only distributions are handled during
// dist resolution.
type SourceBuildPolicy string

const (
	// BuildIfNeeded builds from source only when no compatible pre-built
	// artifact exists. This is the default.
	BuildIfNeeded SourceBuildPolicy = "if-needed"
	// BuildNever forbids source builds; a package without a compatible
	// pre-built artifact fails resolution.
	BuildNever SourceBuildPolicy = "never"
	// BuildAlways builds every package from source, ignoring pre-built
	// artifacts.
	BuildAlways SourceBuildPolicy = "always"
)

// ParseSourceBuildPolicy converts the manifest string form of a policy.
// The empty string maps to BuildIfNeeded.
func ParseSourceBuildPolicy(s string) (SourceBuildPolicy, error) {
	switch SourceBuildPolicy(s) {
	case "":
		return BuildIfNeeded, nil
	case BuildIfNeeded, BuildNever, BuildAlways:
		return SourceBuildPolicy(s), nil
	default:
		return "", zerr.With(ErrInvalidBuildPolicy, "policy", s)
	}
}
