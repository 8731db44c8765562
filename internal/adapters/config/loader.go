// Package config provides the manifest loader for lockstep.
package config

import (
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest file name looked up in the working directory.
const DefaultFilename = "lockstep.yaml"

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader reading the default manifest file name.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load reads the manifest from the given working directory.
func (l *Loader) Load(cwd string) (*domain.Manifest, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a manifest file from the given path.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	var file Manifestfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	return toManifest(&file)
}

func toManifest(file *Manifestfile) (*domain.Manifest, error) {
	if len(file.Platforms) == 0 {
		return nil, domain.ErrNoPlatforms
	}

	policy, err := domain.ParseSourceBuildPolicy(file.BuildPolicy)
	if err != nil {
		return nil, err
	}

	manifest := &domain.Manifest{
		Name:               file.Name,
		SystemRequirements: domain.SystemRequirements(file.SystemRequirements),
		BuildPolicy:        policy,
		BuildEnv:           file.BuildEnv,
		InterpreterPath:    file.InterpreterPath,
	}

	for _, platform := range file.Platforms {
		manifest.Platforms = append(manifest.Platforms, domain.Platform(platform))
	}
	manifest.Channels = append(manifest.Channels, file.Channels...)

	// Virtual packages have no declaration-order semantics; sort for
	// reproducibility.
	names := make([]string, 0, len(file.VirtualPackages))
	for name := range file.VirtualPackages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		manifest.VirtualPackages = append(manifest.VirtualPackages, domain.VirtualCapability{
			Name:    name,
			Version: file.VirtualPackages[name],
		})
	}

	if manifest.ChannelSpecs, err = toSpecs(file.Dependencies); err != nil {
		return nil, err
	}
	if manifest.DistRequirements, err = toSpecs(file.DistDependencies); err != nil {
		return nil, err
	}

	return manifest, nil
}

func toSpecs(m specMap) ([]domain.MatchSpec, error) {
	specs := make([]domain.MatchSpec, 0, len(m.Entries))
	for _, entry := range m.Entries {
		spec := domain.MatchSpec{
			Name:       entry.Name,
			Constraint: entry.Constraint,
			Channel:    entry.Channel,
		}
		for _, extra := range entry.Extras {
			spec.Extras = append(spec.Extras, domain.Extra(extra))
		}

		// Round-trip through the parser to validate name and range.
		parsed, err := domain.ParseMatchSpec(spec.String())
		if err != nil {
			return nil, err
		}
		specs = append(specs, parsed)
	}
	return specs, nil
}
