package driving

import "github.com/custodia-labs/minigrep/internal/core/domain"

// ConfigBuilder turns process arguments into a run configuration.
type ConfigBuilder interface {
	// Build validates args (program name first) and returns the configuration.
	// Returns domain.ErrMissingQuery or domain.ErrMissingPath on bad input.
	Build(args []string) (*domain.Config, error)
}
