package index

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultDir is the default location of the local index mirror.
const DefaultDir = ".lockstep/index"

// Load reads an index from a local directory: channels/<name>.yaml holds one
// repodata file per channel, dists/<name>.yaml one artifact listing per dist
// package. A missing directory yields an empty index.
func Load(dir string) (*Index, error) {
	idx := New()

	if err := loadChannels(idx, filepath.Join(dir, "channels")); err != nil {
		return nil, err
	}
	if err := loadDists(idx, filepath.Join(dir, "dists")); err != nil {
		return nil, err
	}
	return idx, nil
}

func loadChannels(idx *Index, dir string) error {
	return eachYAML(dir, func(name string, data []byte) error {
		var file channelFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrIndexParseFailed.Error()), "channel", name)
		}

		// Sorted platform traversal keeps pool construction deterministic.
		platforms := make([]string, 0, len(file.Platforms))
		for platform := range file.Platforms {
			platforms = append(platforms, platform)
		}
		sort.Strings(platforms)

		for _, platform := range platforms {
			records := make([]domain.RepoRecord, 0, len(file.Platforms[platform]))
			for _, dto := range file.Platforms[platform] {
				records = append(records, domain.RepoRecord{
					Name:     dto.Name,
					Version:  dto.Version,
					Platform: domain.Platform(platform),
					Channel:  name,
					URL:      dto.URL,
					Sha256:   dto.Sha256,
					Depends:  dto.Depends,
				})
			}
			idx.AddChannelRecords(name, domain.Platform(platform), records)
		}
		return nil
	})
}

func loadDists(idx *Index, dir string) error {
	return eachYAML(dir, func(name string, data []byte) error {
		var file distFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrIndexParseFailed.Error()), "package", name)
		}

		for _, release := range file.Releases {
			for _, dto := range release.Artifacts {
				kind := domain.ArtifactKind(dto.Kind)
				if kind == "" {
					kind = domain.ArtifactPrebuilt
				}
				platform := domain.Platform(dto.Platform)
				if platform == "" || kind == domain.ArtifactSource {
					platform = domain.PlatformNoArch
				}

				idx.AddDistRelease(name, domain.DistArtifactRelease{
					Version: release.Version,
					Artifact: domain.Artifact{
						URL:            dto.URL,
						Kind:           kind,
						Platform:       platform,
						InterpreterTag: dto.Interpreter,
						Digests:        dto.Digests,
					},
				}, domain.ArtifactMetadata{
					RequiresDist:        dto.Metadata.Requires,
					RequiresInterpreter: dto.Metadata.RequiresInterpreter,
				})
			}
		}
		return nil
	})
}

// eachYAML calls fn for every .yaml file in dir, in file name order, passing
// the base name without extension. A missing dir is not an error.
func eachYAML(dir string, fn func(name string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrIndexReadFailed.Error())
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path) //nolint:gosec // path is under the index dir
		if err != nil {
			return zerr.Wrap(err, domain.ErrIndexReadFailed.Error())
		}
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		if err := fn(name, data); err != nil {
			return err
		}
	}
	return nil
}
