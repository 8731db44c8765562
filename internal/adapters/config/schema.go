package config

import (
	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Manifestfile represents the structure of the lockstep.yaml manifest file.
type Manifestfile struct {
	Name               string            `yaml:"name"`
	Platforms          []string          `yaml:"platforms"`
	Channels           []string          `yaml:"channels"`
	SystemRequirements map[string]string `yaml:"system-requirements"`
	VirtualPackages    map[string]string `yaml:"virtual-packages"`
	Dependencies       specMap           `yaml:"dependencies"`
	DistDependencies   specMap           `yaml:"dist-dependencies"`
	BuildPolicy        string            `yaml:"build-policy"`
	BuildEnv           map[string]string `yaml:"build-env"`
	InterpreterPath    string            `yaml:"interpreter-path"`
}

// specEntry is one dependency declaration: a package name with either a bare
// version range or a detailed form.
type specEntry struct {
	Name       string
	Constraint string
	Extras     []string
	Channel    string
}

// specDetail is the detailed YAML form of a dependency declaration.
type specDetail struct {
	Version string   `yaml:"version"`
	Extras  []string `yaml:"extras"`
	Channel string   `yaml:"channel"`
}

// specMap preserves dependency declaration order, which plain Go maps would
// lose and lockfile reproducibility requires.
type specMap struct {
	Entries []specEntry
}

// UnmarshalYAML decodes a mapping of package name to either a range string or
// a detailed declaration, preserving declaration order.
func (m *specMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return zerr.With(domain.ErrManifestParseFailed, "reason", "dependencies must be a mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		entry := specEntry{Name: keyNode.Value}
		switch valueNode.Kind {
		case yaml.ScalarNode:
			entry.Constraint = valueNode.Value
		case yaml.MappingNode:
			var detail specDetail
			if err := valueNode.Decode(&detail); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "package", entry.Name)
			}
			entry.Constraint = detail.Version
			entry.Extras = detail.Extras
			entry.Channel = detail.Channel
		default:
			return zerr.With(domain.ErrManifestParseFailed, "package", entry.Name)
		}

		m.Entries = append(m.Entries, entry)
	}
	return nil
}
