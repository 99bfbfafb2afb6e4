package ports

import "go.trai.ch/pin/internal/core/domain"

// ConfigLoader loads the pin project file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project file at the given path.
	Load(path string) (*domain.Project, error)
}
