// Package lockfile persists resolved lockfiles as YAML.
package lockfile

import (
	"os"
	"path/filepath"

	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the lockfile name written next to the manifest.
const DefaultFilename = "lockstep.lock.yaml"

// Writer implements ports.LockfileWriter using a YAML file.
type Writer struct {
	Filename string
}

// NewWriter creates a Writer using the default lockfile name.
func NewWriter() *Writer {
	return &Writer{Filename: DefaultFilename}
}

// Write serializes the lockfile into dir, replacing any previous one.
func (w *Writer) Write(dir string, lf *domain.Lockfile) error {
	data, err := yaml.Marshal(toFile(lf))
	if err != nil {
		return zerr.Wrap(err, "failed to serialize lockfile")
	}

	path := filepath.Join(dir, w.Filename)
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // lockfiles are world-readable
		return zerr.With(zerr.Wrap(err, "failed to write lockfile"), "path", path)
	}
	return nil
}

func toFile(lf *domain.Lockfile) *lockFile {
	file := &lockFile{Version: lf.Version}
	for _, env := range lf.Environments {
		file.Environments = append(file.Environments, toEnvironment(env))
	}
	return file
}

func toEnvironment(env domain.Environment) environmentDTO {
	dto := environmentDTO{Platform: string(env.Platform)}
	for _, rec := range env.Channel {
		dto.Channel = append(dto.Channel, channelPackageDTO{
			Name:    rec.Name,
			Version: rec.Version,
			Channel: rec.Channel,
			URL:     rec.URL,
			Sha256:  rec.Sha256,
			Depends: rec.Depends,
		})
	}
	for _, locked := range env.Dist {
		pkg := distPackageDTO{
			Name:                locked.Package.Name,
			Version:             locked.Package.Version,
			URL:                 locked.Package.URL,
			RequiresDist:        locked.Package.RequiresDist,
			RequiresInterpreter: locked.Package.RequiresInterpreter,
			Extras:              locked.Environment.Extras,
		}
		if h := locked.Package.Hash; h != nil {
			pkg.Hash = &hashDTO{Algorithm: h.Algorithm, Digest: h.Digest}
		}
		dto.Dist = append(dto.Dist, pkg)
	}
	return dto
}
