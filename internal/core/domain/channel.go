package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// RepoRecord describes one binary package from a channel, together with its
// declared dependencies. The same shape is used for available candidates and
// for packages locked by the solver.
type RepoRecord struct {
	Name     string
	Version  string
	Platform Platform
	Channel  string
	URL      string
	Sha256   string

	// Depends holds the package's dependency specs in MatchSpec textual form.
	Depends []string
}

// LockedChannelPackages is the ordered set of channel packages selected by the
// solver for one platform.
type LockedChannelPackages []RepoRecord

// Find returns the first locked record with the given name.
func (l LockedChannelPackages) Find(name string) (RepoRecord, bool) {
	for _, rec := range l {
		if rec.Name == name {
			return rec, true
		}
	}
	return RepoRecord{}, false
}

// SolverTask aggregates every input of one channel solve. Pools holds one
// candidate list per channel; their concatenation order is the solver's
// priority order.
type SolverTask struct {
	Specs           []MatchSpec
	VirtualPackages []VirtualCapability
	Locked          LockedChannelPackages
	Pinned          []RepoRecord
	Pools           [][]RepoRecord

	// Timeout bounds the wall-clock duration of the solve. Zero means the
	// solve runs to completion or failure with no time bound.
	Timeout time.Duration
}

// Fingerprint returns a deterministic hash of the task inputs. Two tasks with
// identical specs, pools, locked, pinned and virtual packages share a
// fingerprint, making repeated solves attributable in logs and telemetry.
func (t *SolverTask) Fingerprint() string {
	h := xxhash.New()
	sep := func() { _, _ = h.WriteString(";") }

	for _, spec := range t.Specs {
		_, _ = h.WriteString(spec.String())
		sep()
	}
	for _, vp := range t.VirtualPackages {
		_, _ = h.WriteString(vp.Name + "=" + vp.Version)
		sep()
	}
	writeRecords := func(records []RepoRecord) {
		for _, rec := range records {
			_, _ = h.WriteString(rec.Channel + "/" + rec.Name + "-" + rec.Version + "@" + string(rec.Platform))
			sep()
		}
	}
	writeRecords(t.Locked)
	writeRecords(t.Pinned)
	for _, pool := range t.Pools {
		writeRecords(pool)
		_, _ = h.WriteString("|")
	}

	return strconv.FormatUint(h.Sum64(), 16)
}

// Conflict is the structured diagnostic returned when the solver proves the
// input constraints unsatisfiable. It implements error and is propagated to
// the caller unchanged.
type Conflict struct {
	// Name is the package whose constraints cannot be met.
	Name string

	// Specs holds the textual constraints involved in the conflict.
	Specs []string

	// RequiredBy names the packages (or "<manifest>") that requested Name.
	RequiredBy []string
}

// Error implements the error interface.
func (c *Conflict) Error() string {
	var b strings.Builder
	b.WriteString("cannot satisfy constraints on ")
	b.WriteString(c.Name)
	if len(c.Specs) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(c.Specs, "; "))
		b.WriteString(")")
	}
	if len(c.RequiredBy) > 0 {
		b.WriteString(" required by ")
		b.WriteString(strings.Join(c.RequiredBy, ", "))
	}
	return b.String()
}
