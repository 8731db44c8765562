// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/lockstep/internal/core/domain"

// ChannelSolver is the binary-ecosystem constraint solving engine.
//
// Solve is a pure, CPU-bound computation: it takes no context and runs to
// completion or failure. Callers that need to remain responsive run it off
// their own task (see the resolve engine).
//
//go:generate go run go.uber.org/mock/mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks
type ChannelSolver interface {
	// Solve returns an ordered locked set satisfying every spec, virtual
	// capability, locked and pinned record in the task, or a *domain.Conflict
	// naming the unsatisfiable constraint set.
	//
	// Output ordering is deterministic given deterministic input ordering.
	Solve(task domain.SolverTask) (domain.LockedChannelPackages, error)
}
