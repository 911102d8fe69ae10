package ports

import "github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves settings for the given working directory: defaults, then the
	// nearest crmadmin.yaml, then CRMADMIN_* environment overrides.
	Load(cwd string) (domain.Settings, error)

	// DiscoverConfigPath walks up from cwd and returns the config file path, or "" if none exists.
	DiscoverConfigPath(cwd string) (string, error)
}
