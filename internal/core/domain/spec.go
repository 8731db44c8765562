// Package domain contains the core domain models for package resolution:
// match specs, channel records, dist artifacts and locked package collections.
package domain

import (
	"strings"

	semver "github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// Extra is the name of an optional feature set of a dist package that can be
// activated per environment.
type Extra string

// MatchSpec is a single constraint on a package: a name, an optional version
// range, optional extras to activate and an optional channel override.
//
// The textual form is "channel::name[extra1,extra2] range" where every part
// except the name is optional. The range uses standard constraint syntax
// (e.g. ">=1.0, <2.0").
type MatchSpec struct {
	Name       string
	Constraint string
	Extras     []Extra
	Channel    string
}

// ParseMatchSpec parses the textual form of a MatchSpec.
func ParseMatchSpec(s string) (MatchSpec, error) {
	spec := MatchSpec{}
	rest := strings.TrimSpace(s)

	if channel, after, found := strings.Cut(rest, "::"); found {
		spec.Channel = strings.TrimSpace(channel)
		rest = after
	}

	// Split the name (optionally carrying an extras suffix) from the range.
	name := rest
	if i := strings.IndexAny(rest, " \t<>=!~^"); i >= 0 {
		name = rest[:i]
		spec.Constraint = strings.TrimSpace(rest[i:])
	}

	if open := strings.Index(name, "["); open >= 0 {
		if !strings.HasSuffix(name, "]") {
			return MatchSpec{}, zerr.With(ErrInvalidMatchSpec, "spec", s)
		}
		for _, extra := range strings.Split(name[open+1:len(name)-1], ",") {
			extra = strings.TrimSpace(extra)
			if extra == "" {
				return MatchSpec{}, zerr.With(ErrInvalidMatchSpec, "spec", s)
			}
			spec.Extras = append(spec.Extras, Extra(extra))
		}
		name = name[:open]
	}

	if name == "" {
		return MatchSpec{}, zerr.With(ErrInvalidMatchSpec, "spec", s)
	}
	spec.Name = name

	// Validate the range eagerly so malformed manifests fail at parse time.
	if spec.Constraint != "" {
		if _, err := semver.NewConstraint(spec.Constraint); err != nil {
			return MatchSpec{}, zerr.With(zerr.Wrap(err, ErrInvalidMatchSpec.Error()), "spec", s)
		}
	}

	return spec, nil
}

// MustParseMatchSpec is ParseMatchSpec that panics on error. For tests and
// static tables only.
func MustParseMatchSpec(s string) MatchSpec {
	spec, err := ParseMatchSpec(s)
	if err != nil {
		panic(err)
	}
	return spec
}

// Matches reports whether the given version satisfies the spec's range.
// An empty range matches every version. A malformed version never matches.
func (m MatchSpec) Matches(version string) bool {
	if m.Constraint == "" {
		return true
	}
	c, err := semver.NewConstraint(m.Constraint)
	if err != nil {
		return false
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return c.Check(v)
}

// String returns the canonical textual form of the spec.
func (m MatchSpec) String() string {
	var b strings.Builder
	if m.Channel != "" {
		b.WriteString(m.Channel)
		b.WriteString("::")
	}
	b.WriteString(m.Name)
	if len(m.Extras) > 0 {
		b.WriteString("[")
		for i, e := range m.Extras {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(string(e))
		}
		b.WriteString("]")
	}
	if m.Constraint != "" {
		b.WriteString(" ")
		b.WriteString(m.Constraint)
	}
	return b.String()
}
