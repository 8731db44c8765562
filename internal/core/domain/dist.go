package domain

// ArtifactKind distinguishes pre-built artifacts from source archives that
// need a build step before installation.
type ArtifactKind string

const (
	// ArtifactPrebuilt is a ready-to-install binary artifact.
	ArtifactPrebuilt ArtifactKind = "prebuilt"
	// ArtifactSource is a source archive requiring a build step.
	ArtifactSource ArtifactKind = "source"
)

// HashAlgorithmSha256 is the only digest algorithm carried into locked
// packages. Artifacts declaring other algorithms lock without a hash.
const HashAlgorithmSha256 = "sha256"

// Artifact is one distributable file of a dist package release.
type Artifact struct {
	URL  string
	Kind ArtifactKind

	// Platform is the artifact's platform tag; PlatformNoArch marks artifacts
	// installable everywhere. Source archives are always platform-independent.
	Platform Platform

	// InterpreterTag is the artifact-level interpreter compatibility range in
	// constraint syntax. Empty means compatible with any interpreter.
	InterpreterTag string

	// Digests maps digest algorithm names to hex digests.
	Digests map[string]string
}

// ArtifactMetadata is the declared dependency and interpreter-compatibility
// metadata of one artifact, as extracted from the artifact itself.
type ArtifactMetadata struct {
	// RequiresDist holds dependency specs in MatchSpec textual form.
	RequiresDist []string

	// RequiresInterpreter is the declared interpreter compatibility range.
	RequiresInterpreter string
}

// DistArtifactRelease ties an artifact to the release version it distributes.
type DistArtifactRelease struct {
	Version  string
	Artifact Artifact
}

// DistCandidate is a dist package chosen by the resolver, before its metadata
// is joined into a locked record.
type DistCandidate struct {
	Name    string
	Version string

	// Extras holds the optional feature sets activated for this package, in
	// activation order.
	Extras []Extra

	// Artifact is the chosen artifact reference. For source-built packages
	// this stays the source archive; the build product is a local by-product
	// and never enters the lock.
	Artifact Artifact
}

// PackageHash is the integrity hash of a locked artifact.
type PackageHash struct {
	Algorithm string
	Digest    string
}

// HashFromDigests selects the supported digest from an artifact's digest set.
// It returns nil when no supported algorithm is declared; an unsupported
// algorithm is not an error.
func HashFromDigests(digests map[string]string) *PackageHash {
	digest, ok := digests[HashAlgorithmSha256]
	if !ok || digest == "" {
		return nil
	}
	return &PackageHash{Algorithm: HashAlgorithmSha256, Digest: digest}
}

// LockedDistPackage is the canonical locked record of one dist package.
type LockedDistPackage struct {
	Name                string
	Version             string
	RequiresDist        []string
	RequiresInterpreter string
	URL                 string

	// Hash is present only when the artifact declared a supported digest.
	Hash *PackageHash
}

// DistEnvironmentData records which extras are active for one locked package
// in the resolved environment.
type DistEnvironmentData struct {
	Extras []string
}

// LockedDist pairs a locked package with its per-environment activation data.
type LockedDist struct {
	Package     LockedDistPackage
	Environment DistEnvironmentData
}

// LockedDistPackages is the ordered output of one dist resolution.
type LockedDistPackages []LockedDist

// AssembleLockedDist converts one (candidate, metadata) pair into its locked
// record and environment data. Name and version come from the candidate,
// requires and interpreter compatibility from the metadata, URL and hash from
// the chosen artifact. Extras are stringified order-preserving.
func AssembleLockedDist(candidate DistCandidate, metadata ArtifactMetadata) LockedDist {
	extras := make([]string, len(candidate.Extras))
	for i, e := range candidate.Extras {
		extras[i] = string(e)
	}

	return LockedDist{
		Package: LockedDistPackage{
			Name:                candidate.Name,
			Version:             candidate.Version,
			RequiresDist:        metadata.RequiresDist,
			RequiresInterpreter: metadata.RequiresInterpreter,
			URL:                 candidate.Artifact.URL,
			Hash:                HashFromDigests(candidate.Artifact.Digests),
		},
		Environment: DistEnvironmentData{Extras: extras},
	}
}
