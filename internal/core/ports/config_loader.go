package ports

import "go.trai.ch/lockstep/internal/core/domain"

// ManifestLoader loads the project manifest from a working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest from the given working directory.
	Load(cwd string) (*domain.Manifest, error)
}
