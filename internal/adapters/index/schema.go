package index

// channelFile is the YAML shape of one channel's repodata file. The channel
// name is the file's base name.
type channelFile struct {
	Platforms map[string][]repoRecordDTO `yaml:"platforms"`
}

type repoRecordDTO struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	URL     string   `yaml:"url"`
	Sha256  string   `yaml:"sha256"`
	Depends []string `yaml:"depends"`
}

// distFile is the YAML shape of one dist package's artifact listing. The
// package name is the file's base name.
type distFile struct {
	Releases []releaseDTO `yaml:"releases"`
}

type releaseDTO struct {
	Version   string        `yaml:"version"`
	Artifacts []artifactDTO `yaml:"artifacts"`
}

type artifactDTO struct {
	URL         string            `yaml:"url"`
	Kind        string            `yaml:"kind"`
	Platform    string            `yaml:"platform"`
	Interpreter string            `yaml:"interpreter"`
	Digests     map[string]string `yaml:"digests"`
	Metadata    metadataDTO       `yaml:"metadata"`
}

type metadataDTO struct {
	Requires            []string `yaml:"requires"`
	RequiresInterpreter string   `yaml:"requires-interpreter"`
}
