// Package dist implements the DistResolver port: breadth-first requirement
// expansion with artifact compatibility filtering and policy-driven source
// builds.
//
// The resolver fetches metadata for every artifact it chooses through the
// package index while resolving, so by the time it returns, the index cache
// holds metadata for each candidate. The resolve engine's lock assembly
// depends on that.
package dist

import (
	"context"
	"sort"
	"strings"

	semver "github.com/Masterminds/semver/v3"
	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/lockstep/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultInterpreterName is the channel package treated as the environment's
// interpreter when filtering artifact compatibility.
const DefaultInterpreterName = "python"

const manifestRequirer = "<manifest>"

// Resolver implements ports.DistResolver.
type Resolver struct {
	index           ports.PackageIndex
	builder         ports.SourceBuilder
	interpreterName string
}

// New creates a dist resolver using the default interpreter package name.
func New(pkgIndex ports.PackageIndex, srcBuilder ports.SourceBuilder) *Resolver {
	return NewWithInterpreter(pkgIndex, srcBuilder, DefaultInterpreterName)
}

// NewWithInterpreter creates a dist resolver pinning compatibility against
// the named channel package.
func NewWithInterpreter(pkgIndex ports.PackageIndex, srcBuilder ports.SourceBuilder, interpreterName string) *Resolver {
	return &Resolver{
		index:           pkgIndex,
		builder:         srcBuilder,
		interpreterName: interpreterName,
	}
}

type requirement struct {
	spec       domain.MatchSpec
	requiredBy string
}

type pkgState struct {
	specs      []domain.MatchSpec
	extras     []domain.Extra
	extrasSeen map[domain.Extra]bool
	version    string
	artifact   domain.Artifact
	chosen     bool
}

// Resolve expands the requirements breadth-first. For each package it picks
// the highest release satisfying every constraint seen so far that has a
// usable artifact under the build policy, preferring pre-built artifacts
// where the policy allows them. Output follows first-resolution order.
func (r *Resolver) Resolve(
	ctx context.Context,
	req ports.DistResolveRequest,
) ([]domain.DistCandidate, error) {
	if len(req.Requirements) == 0 {
		return nil, nil
	}

	interpreter, err := r.interpreterVersion(req)
	if err != nil {
		return nil, err
	}

	pkgs := make(map[string]*pkgState)
	var order []string
	queue := make([]requirement, 0, len(req.Requirements))
	for _, spec := range req.Requirements {
		queue = append(queue, requirement{spec: spec, requiredBy: manifestRequirer})
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		name := current.spec.Name

		ps, ok := pkgs[name]
		if !ok {
			ps = &pkgState{extrasSeen: make(map[domain.Extra]bool)}
			pkgs[name] = ps
		}
		ps.specs = append(ps.specs, current.spec)
		for _, extra := range current.spec.Extras {
			if !ps.extrasSeen[extra] {
				ps.extrasSeen[extra] = true
				ps.extras = append(ps.extras, extra)
			}
		}

		if ps.chosen {
			if !current.spec.Matches(ps.version) {
				err := zerr.With(domain.ErrDistUnsatisfiable, "package", name)
				err = zerr.With(err, "chosen_version", ps.version)
				err = zerr.With(err, "spec", current.spec.String())
				err = zerr.With(err, "required_by", current.requiredBy)
				return nil, err
			}
			continue
		}

		version, artifact, err := r.choose(ctx, req, name, ps.specs, interpreter)
		if err != nil {
			return nil, err
		}

		metadata, err := r.obtainMetadata(ctx, req, name, version, artifact)
		if err != nil {
			return nil, err
		}

		ps.version = version
		ps.artifact = artifact
		ps.chosen = true
		order = append(order, name)

		for _, raw := range metadata.RequiresDist {
			depSpec, err := domain.ParseMatchSpec(raw)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "malformed requires entry"), "package", name)
			}
			queue = append(queue, requirement{spec: depSpec, requiredBy: name})
		}
	}

	candidates := make([]domain.DistCandidate, 0, len(order))
	for _, name := range order {
		ps := pkgs[name]
		candidates = append(candidates, domain.DistCandidate{
			Name:     name,
			Version:  ps.version,
			Extras:   ps.extras,
			Artifact: ps.artifact,
		})
	}
	return candidates, nil
}

// choose picks the highest release of name that satisfies every spec and has
// a usable artifact under the build policy.
func (r *Resolver) choose(
	ctx context.Context,
	req ports.DistResolveRequest,
	name string,
	specs []domain.MatchSpec,
	interpreter *semver.Version,
) (string, domain.Artifact, error) {
	releases, err := r.index.DistArtifacts(ctx, name)
	if err != nil {
		return "", domain.Artifact{}, err
	}

	byVersion := make(map[string][]domain.Artifact)
	var versions []string
	for _, release := range releases {
		if _, seen := byVersion[release.Version]; !seen {
			versions = append(versions, release.Version)
		}
		byVersion[release.Version] = append(byVersion[release.Version], release.Artifact)
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return compareVersions(versions[i], versions[j]) > 0
	})

	for _, version := range versions {
		if !allMatch(specs, version) {
			continue
		}
		if artifact, ok := r.usableArtifact(byVersion[version], req, interpreter); ok {
			return version, artifact, nil
		}
	}

	constraints := make([]string, 0, len(specs))
	for _, spec := range specs {
		constraints = append(constraints, spec.String())
	}
	err = zerr.With(domain.ErrNoCompatibleArtifact, "package", name)
	err = zerr.With(err, "specs", strings.Join(constraints, "; "))
	err = zerr.With(err, "platform", string(req.Platform))
	err = zerr.With(err, "build_policy", string(req.BuildPolicy))
	return "", domain.Artifact{}, err
}

// usableArtifact selects the artifact of one release to lock, honoring the
// build policy. Platform-specific pre-built artifacts win over
// platform-independent ones; source archives are last (or the only choice
// under BuildAlways). The decision depends only on the inputs, never on
// previous builds.
func (r *Resolver) usableArtifact(
	artifacts []domain.Artifact,
	req ports.DistResolveRequest,
	interpreter *semver.Version,
) (domain.Artifact, bool) {
	var specific, noarch, source *domain.Artifact
	for i := range artifacts {
		artifact := artifacts[i]
		switch artifact.Kind {
		case domain.ArtifactSource:
			if source == nil {
				source = &artifact
			}
		case domain.ArtifactPrebuilt:
			if !interpreterCompatible(artifact.InterpreterTag, interpreter) {
				continue
			}
			switch artifact.Platform {
			case req.Platform:
				if specific == nil {
					specific = &artifact
				}
			case domain.PlatformNoArch:
				if noarch == nil {
					noarch = &artifact
				}
			}
		}
	}

	switch req.BuildPolicy {
	case domain.BuildAlways:
		if source != nil {
			return *source, true
		}
	case domain.BuildNever:
		if specific != nil {
			return *specific, true
		}
		if noarch != nil {
			return *noarch, true
		}
	default: // BuildIfNeeded
		if specific != nil {
			return *specific, true
		}
		if noarch != nil {
			return *noarch, true
		}
		if source != nil {
			return *source, true
		}
	}
	return domain.Artifact{}, false
}

// obtainMetadata fetches prebuilt metadata through the index, or requests a
// source build and write-through caches the extracted metadata, so the cache
// holds an entry for every chosen artifact before resolution returns.
func (r *Resolver) obtainMetadata(
	ctx context.Context,
	req ports.DistResolveRequest,
	name, version string,
	artifact domain.Artifact,
) (domain.ArtifactMetadata, error) {
	if artifact.Kind != domain.ArtifactSource {
		metadata, err := r.index.FetchMetadata(ctx, artifact)
		if err != nil {
			return domain.ArtifactMetadata{}, zerr.With(err, "package", name)
		}
		return metadata, nil
	}

	metadata, err := r.builder.Build(ctx, ports.BuildRequest{
		Name:            name,
		Version:         version,
		Source:          artifact,
		Platform:        req.Platform,
		InterpreterPath: req.InterpreterPath,
		Env:             req.BuildEnv,
	})
	if err != nil {
		// A failed build fails the whole resolution, never a partial result.
		return domain.ArtifactMetadata{}, zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "package", name)
	}

	r.index.StoreMetadata(artifact, metadata)
	return metadata, nil
}

// interpreterVersion pins the interpreter used for compatibility filtering:
// the locked channel set wins, then the declared system requirement.
func (r *Resolver) interpreterVersion(req ports.DistResolveRequest) (*semver.Version, error) {
	if rec, ok := req.LockedChannelPackages.Find(r.interpreterName); ok {
		v, err := semver.NewVersion(rec.Version)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrNoInterpreter.Error()), "package", r.interpreterName)
			return nil, zerr.With(err, "version", rec.Version)
		}
		return v, nil
	}
	if v, ok := req.SystemRequirements.Minimum(r.interpreterName); ok {
		return v, nil
	}
	return nil, zerr.With(domain.ErrNoInterpreter, "interpreter", r.interpreterName)
}

func interpreterCompatible(tag string, interpreter *semver.Version) bool {
	if tag == "" {
		return true
	}
	c, err := semver.NewConstraint(tag)
	if err != nil {
		return false
	}
	return c.Check(interpreter)
}

func allMatch(specs []domain.MatchSpec, version string) bool {
	for _, spec := range specs {
		if !spec.Matches(version) {
			return false
		}
	}
	return true
}

func compareVersions(a, b string) int {
	av, aerr := semver.NewVersion(a)
	bv, berr := semver.NewVersion(b)
	if aerr != nil || berr != nil {
		return strings.Compare(a, b)
	}
	return av.Compare(bv)
}
