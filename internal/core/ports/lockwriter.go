package ports

import "go.trai.ch/lockstep/internal/core/domain"

// LockfileWriter persists a resolved lockfile next to the manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=lockwriter.go -destination=mocks/mock_lockwriter.go -package=mocks
type LockfileWriter interface {
	// Write serializes the lockfile into dir, replacing any previous one.
	Write(dir string, lockfile *domain.Lockfile) error
}
