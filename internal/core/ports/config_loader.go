package ports

import "go.trai.ch/repute/internal/core/domain"

// ConfigLoader defines the interface for loading the CLI settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path and applies environment overrides.
	// A missing file yields defaults.
	Load(path string) (*domain.Settings, error)
}
