package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidMatchSpec is returned when a match spec cannot be parsed.
	ErrInvalidMatchSpec = zerr.New("invalid match spec")

	// ErrInvalidBuildPolicy is returned when a source build policy string is not recognized.
	ErrInvalidBuildPolicy = zerr.New("invalid source build policy, expected 'never', 'always' or 'if-needed'")

	// ErrSolveCancelled is returned when a channel solve is abandoned before producing a result.
	ErrSolveCancelled = zerr.New("channel solve was cancelled")

	// ErrSolveTimeout is returned when a channel solve exceeds its wall-clock timeout.
	ErrSolveTimeout = zerr.New("channel solve timed out")

	// ErrNoInterpreter is returned when dist resolution cannot determine an interpreter version.
	ErrNoInterpreter = zerr.New("no interpreter available for dist resolution")

	// ErrPackageNotFound is returned when a required dist package has no artifacts in the index.
	ErrPackageNotFound = zerr.New("package not found in index")

	// ErrNoCompatibleArtifact is returned when no release of a dist package has a usable artifact.
	ErrNoCompatibleArtifact = zerr.New("no compatible artifact")

	// ErrDistUnsatisfiable is returned when dist requirements contradict each other.
	ErrDistUnsatisfiable = zerr.New("dist requirements are unsatisfiable")

	// ErrBuildFailed is returned when a requested source build fails.
	ErrBuildFailed = zerr.New("source build failed")

	// ErrNotSourceArtifact is returned when a build is requested for a non-source artifact.
	ErrNotSourceArtifact = zerr.New("build requested for a non-source artifact")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrNoPlatforms is returned when a manifest declares no target platforms.
	ErrNoPlatforms = zerr.New("manifest declares no target platforms")

	// ErrUnknownChannel is returned when a manifest references a channel absent from the index.
	ErrUnknownChannel = zerr.New("channel not found in index")

	// ErrIndexReadFailed is returned when index data cannot be read from disk.
	ErrIndexReadFailed = zerr.New("failed to read index data")

	// ErrIndexParseFailed is returned when index data cannot be parsed.
	ErrIndexParseFailed = zerr.New("failed to parse index data")

	// ErrMetadataFetchFailed is returned when artifact metadata cannot be retrieved.
	ErrMetadataFetchFailed = zerr.New("failed to fetch artifact metadata")

	// ErrLockFailed is returned when the lock operation fails for any platform.
	ErrLockFailed = zerr.New("lock failed")
)
