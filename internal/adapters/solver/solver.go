// Package solver implements the ChannelSolver port with a deterministic
// backtracking search over per-channel candidate pools.
package solver

import (
	"errors"
	"sort"
	"strings"

	semver "github.com/Masterminds/semver/v3"
	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/zerr"
)

// manifestRequirer marks requirements that come straight from the input specs
// rather than from another package's dependency list.
const manifestRequirer = "<manifest>"

// Solver implements ports.ChannelSolver.
type Solver struct{}

// New creates a new channel solver.
func New() *Solver {
	return &Solver{}
}

// Solve runs the backtracking search. Candidate preference order: the
// already-locked version of a package first, then pool (channel) order, then
// highest version. Pinned records are forced into the selection before the
// search starts. Output follows selection order, which is deterministic given
// deterministic input ordering.
func (s *Solver) Solve(task domain.SolverTask) (domain.LockedChannelPackages, error) {
	st := newSolveState(task)

	pending := make([]requirement, 0, len(task.Specs))
	for _, spec := range task.Specs {
		pending = append(pending, requirement{spec: spec, requiredBy: manifestRequirer})
	}

	if err := st.satisfy(pending); err != nil {
		return nil, err
	}
	return st.locked(), nil
}

// requirement is one pending constraint together with its requirer, kept for
// conflict diagnostics.
type requirement struct {
	spec       domain.MatchSpec
	requiredBy string
}

type solveState struct {
	task       domain.SolverTask
	virtual    map[string]string
	lockedRecs map[string]domain.RepoRecord
	selected   map[string]domain.RepoRecord
	order      []string
	seen       map[string][]requirement
	candidates map[string][]domain.RepoRecord
}

func newSolveState(task domain.SolverTask) *solveState {
	st := &solveState{
		task:       task,
		virtual:    make(map[string]string, len(task.VirtualPackages)),
		lockedRecs: make(map[string]domain.RepoRecord, len(task.Locked)),
		selected:   make(map[string]domain.RepoRecord),
		seen:       make(map[string][]requirement),
		candidates: make(map[string][]domain.RepoRecord),
	}
	for _, vp := range task.VirtualPackages {
		st.virtual[vp.Name] = vp.Version
	}
	for _, rec := range task.Locked {
		if _, exists := st.lockedRecs[rec.Name]; !exists {
			st.lockedRecs[rec.Name] = rec
		}
	}
	// Pinned packages enter the selection up front, regardless of spec
	// satisfaction.
	for _, rec := range task.Pinned {
		if _, exists := st.selected[rec.Name]; !exists {
			st.selected[rec.Name] = rec
			st.order = append(st.order, rec.Name)
		}
	}
	return st
}

// satisfy processes pending requirements depth-first with backtracking.
func (st *solveState) satisfy(pending []requirement) error {
	if len(pending) == 0 {
		return nil
	}
	req, rest := pending[0], pending[1:]
	name := req.spec.Name
	st.seen[name] = append(st.seen[name], req)

	if version, ok := st.virtual[name]; ok {
		if req.spec.Matches(version) {
			return st.satisfy(rest)
		}
		return st.conflict(name)
	}

	if rec, ok := st.selected[name]; ok {
		if req.spec.Matches(rec.Version) {
			return st.satisfy(rest)
		}
		return st.conflict(name)
	}

	var lastConflict error
	for _, cand := range st.candidatesFor(req.spec) {
		if !req.spec.Matches(cand.Version) {
			continue
		}

		mark := len(st.order)
		st.selected[name] = cand
		st.order = append(st.order, name)

		deps, err := st.depRequirements(cand)
		if err != nil {
			return err
		}

		err = st.satisfy(append(deps, rest...))
		if err == nil {
			return nil
		}
		var conflict *domain.Conflict
		if !errors.As(err, &conflict) {
			return err
		}

		// Roll back everything selected under this candidate and try the
		// next one.
		for _, selectedName := range st.order[mark:] {
			delete(st.selected, selectedName)
		}
		st.order = st.order[:mark]
		lastConflict = err
	}

	if lastConflict != nil {
		return lastConflict
	}
	return st.conflict(name)
}

// candidatesFor returns the ordered candidate records for a spec: the locked
// record first, then each pool in channel priority order sorted by version
// descending. Results are cached per name+channel.
func (st *solveState) candidatesFor(spec domain.MatchSpec) []domain.RepoRecord {
	key := spec.Channel + "::" + spec.Name
	if cached, ok := st.candidates[key]; ok {
		return cached
	}

	matches := func(rec domain.RepoRecord) bool {
		return rec.Name == spec.Name && (spec.Channel == "" || rec.Channel == spec.Channel)
	}

	var out []domain.RepoRecord
	seenURLs := make(map[string]bool)
	add := func(rec domain.RepoRecord) {
		if seenURLs[rec.URL] {
			return
		}
		seenURLs[rec.URL] = true
		out = append(out, rec)
	}

	if rec, ok := st.lockedRecs[spec.Name]; ok && matches(rec) {
		add(rec)
	}
	for _, pool := range st.task.Pools {
		var bucket []domain.RepoRecord
		for _, rec := range pool {
			if matches(rec) {
				bucket = append(bucket, rec)
			}
		}
		sort.SliceStable(bucket, func(i, j int) bool {
			if c := compareVersions(bucket[i].Version, bucket[j].Version); c != 0 {
				return c > 0
			}
			return bucket[i].URL < bucket[j].URL
		})
		for _, rec := range bucket {
			add(rec)
		}
	}

	st.candidates[key] = out
	return out
}

func (st *solveState) depRequirements(rec domain.RepoRecord) ([]requirement, error) {
	deps := make([]requirement, 0, len(rec.Depends))
	for _, raw := range rec.Depends {
		spec, err := domain.ParseMatchSpec(raw)
		if err != nil {
			// A malformed dependency on an index record is bad data, not an
			// unsatisfiability result.
			return nil, zerr.With(zerr.Wrap(err, "malformed dependency spec"), "package", rec.Name)
		}
		deps = append(deps, requirement{spec: spec, requiredBy: rec.Name})
	}
	return deps, nil
}

// conflict builds the structured diagnostic for the named package from every
// requirement seen for it.
func (st *solveState) conflict(name string) error {
	var specs, requiredBy []string
	seenSpec := make(map[string]bool)
	seenReq := make(map[string]bool)
	for _, req := range st.seen[name] {
		if s := req.spec.String(); !seenSpec[s] {
			seenSpec[s] = true
			specs = append(specs, s)
		}
		if !seenReq[req.requiredBy] {
			seenReq[req.requiredBy] = true
			requiredBy = append(requiredBy, req.requiredBy)
		}
	}
	return &domain.Conflict{Name: name, Specs: specs, RequiredBy: requiredBy}
}

// locked returns the selected records in selection order.
func (st *solveState) locked() domain.LockedChannelPackages {
	out := make(domain.LockedChannelPackages, 0, len(st.order))
	for _, name := range st.order {
		out = append(out, st.selected[name])
	}
	return out
}

// compareVersions orders versions semantically, falling back to a lexical
// comparison for versions that do not parse.
func compareVersions(a, b string) int {
	av, aerr := semver.NewVersion(a)
	bv, berr := semver.NewVersion(b)
	if aerr != nil || berr != nil {
		return strings.Compare(a, b)
	}
	return av.Compare(bv)
}
