package ports

import "go.trai.ch/svgmake/internal/core/domain"

// ConfigLoader defines the interface for loading the generator configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the project file starting at cwd and returns the resolved configuration.
	// Built-in defaults are returned when no project file exists.
	Load(cwd string) (*domain.Config, error)
}
