package lockfile

// lockFile is the YAML shape of a written lockfile.
type lockFile struct {
	Version      int              `yaml:"version"`
	Environments []environmentDTO `yaml:"environments"`
}

type environmentDTO struct {
	Platform string              `yaml:"platform"`
	Channel  []channelPackageDTO `yaml:"channel,omitempty"`
	Dist     []distPackageDTO    `yaml:"dist,omitempty"`
}

type channelPackageDTO struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	Channel string   `yaml:"channel"`
	URL     string   `yaml:"url"`
	Sha256  string   `yaml:"sha256,omitempty"`
	Depends []string `yaml:"depends,omitempty"`
}

type distPackageDTO struct {
	Name                string   `yaml:"name"`
	Version             string   `yaml:"version"`
	URL                 string   `yaml:"url"`
	Hash                *hashDTO `yaml:"hash,omitempty"`
	RequiresDist        []string `yaml:"requires-dist,omitempty"`
	RequiresInterpreter string   `yaml:"requires-interpreter,omitempty"`
	Extras              []string `yaml:"extras,omitempty"`
}

type hashDTO struct {
	Algorithm string `yaml:"algorithm"`
	Digest    string `yaml:"digest"`
}
