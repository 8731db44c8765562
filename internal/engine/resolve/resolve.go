// Package resolve coordinates the two resolution engines and assembles their
// output into locked package collections.
//
// ResolveChannel drives the channel-ecosystem constraint solver on a dedicated
// worker goroutine; ResolveDist drives the dist-ecosystem resolver and joins
// each candidate with its cached artifact metadata. Both are independent entry
// points; callers decide ordering (the channel solve typically runs first so
// dist resolution can see the solved interpreter).
package resolve

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/lockstep/internal/core/domain"
	"go.trai.ch/lockstep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver is the resolution core. It is stateless and safe for concurrent
// use; independent resolutions (e.g. one per target platform) may run as
// concurrent tasks sharing one Resolver.
type Resolver struct {
	solver    ports.ChannelSolver
	dists     ports.DistResolver
	index     ports.PackageIndex
	telemetry ports.Telemetry
}

// New creates a new Resolver with the given engines and index.
func New(
	solver ports.ChannelSolver,
	dists ports.DistResolver,
	index ports.PackageIndex,
	telemetry ports.Telemetry,
) *Resolver {
	return &Resolver{
		solver:    solver,
		dists:     dists,
		index:     index,
		telemetry: telemetry,
	}
}

// solveOutcome carries a worker result across the completion channel.
type solveOutcome struct {
	records  domain.LockedChannelPackages
	err      error
	panicked bool
	panicVal any
}

// ResolveChannel solves the channel package set for the given task.
//
// Constraint solving is CPU intensive, so the solve runs on a separate worker
// goroutine and this call suspends until the worker completes. A worker panic
// is re-raised here verbatim so its root cause is not masked. If the
// surrounding context is cancelled while the solve is in flight, the worker is
// abandoned (it runs to completion undetected) and ErrSolveCancelled is
// returned; the caller never hangs. A non-zero task timeout bounds the wall
// clock the same way, yielding ErrSolveTimeout.
func (r *Resolver) ResolveChannel(
	ctx context.Context,
	task domain.SolverTask,
) (domain.LockedChannelPackages, error) {
	ctx, vtx := r.telemetry.Record(ctx, "solving channel packages")
	vtx.Log(domain.LogLevelDebug, "solver task "+task.Fingerprint())

	done := make(chan solveOutcome, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- solveOutcome{panicked: true, panicVal: p}
			}
		}()
		records, err := r.solver.Solve(task)
		done <- solveOutcome{records: records, err: err}
	}()

	var timeout <-chan time.Time
	if task.Timeout > 0 {
		timer := time.NewTimer(task.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case out := <-done:
		if out.panicked {
			vtx.Complete(fmt.Errorf("solver panic: %v", out.panicVal))
			// An internal solver fault, not an unsatisfiability result.
			// Re-raise it unchanged so the root cause is visible.
			panic(out.panicVal)
		}
		if out.err != nil {
			// Conflicts bubble unchanged as rich diagnostics.
			vtx.Complete(out.err)
			return nil, out.err
		}
		vtx.Complete(nil)
		return out.records, nil

	case <-timeout:
		err := zerr.With(domain.ErrSolveTimeout, "timeout", task.Timeout.String())
		vtx.Complete(err)
		return nil, err

	case <-ctx.Done():
		// The worker keeps running; nothing can join it anymore, so report
		// the detachment as a cancellation instead of hanging.
		err := zerr.With(domain.ErrSolveCancelled, "cause", ctx.Err().Error())
		vtx.Complete(err)
		return nil, err
	}
}

// ResolveDist resolves the dist package set for the given request and
// assembles the locked records.
//
// The resolver's candidate list is authoritative. Metadata for every chosen
// artifact must already be resident in the index cache: the resolver fetched
// it during its own compatibility filtering (source builds included). A cache
// miss here means the resolver and the index disagree about what was fetched,
// which is a defect, so it panics instead of re-fetching or skipping.
func (r *Resolver) ResolveDist(
	ctx context.Context,
	req ports.DistResolveRequest,
) (domain.LockedDistPackages, error) {
	ctx, vtx := r.telemetry.Record(ctx, "resolving dist dependencies")

	candidates, err := r.dists.Resolve(ctx, req)
	if err != nil {
		vtx.Complete(err)
		return nil, zerr.Wrap(err, "failed to resolve dist dependencies")
	}

	locked := make(domain.LockedDistPackages, 0, len(candidates))
	for _, candidate := range candidates {
		// No build step here: any builds happened during Resolve above.
		metadata, ok := r.index.CachedMetadata(candidate.Artifact)
		if !ok {
			panic(fmt.Sprintf(
				"no cached metadata for %s-%s (%s); metadata must be fetched during solving",
				candidate.Name, candidate.Version, candidate.Artifact.URL,
			))
		}

		locked = append(locked, domain.AssembleLockedDist(candidate, metadata))
	}

	vtx.Complete(nil)
	return locked, nil
}
