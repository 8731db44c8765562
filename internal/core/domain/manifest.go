package domain

// Manifest is the parsed project manifest: the declared dependency
// requirements and resolution settings for every target platform.
type Manifest struct {
	// Name is the project name.
	Name string

	// Platforms lists the target platforms to resolve, in declaration order.
	Platforms []Platform

	// Channels lists the channels to draw binary packages from, in priority
	// order.
	Channels []string

	// SystemRequirements declares minimum platform capabilities.
	SystemRequirements SystemRequirements

	// VirtualPackages holds capabilities declared in addition to the
	// platform baselines.
	VirtualPackages []VirtualCapability

	// ChannelSpecs are the channel-ecosystem dependency requirements.
	ChannelSpecs []MatchSpec

	// DistRequirements are the dist-ecosystem dependency requirements.
	// Multiple entries may share a name when declared by different sources.
	DistRequirements []MatchSpec

	// BuildPolicy controls source builds during dist resolution.
	BuildPolicy SourceBuildPolicy

	// BuildEnv holds environment variables injected into source builds.
	BuildEnv map[string]string

	// InterpreterPath optionally points at a locally available interpreter.
	InterpreterPath string
}
