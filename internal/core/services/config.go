package services

import (
	"os"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
)

// Ensure ConfigBuilder implements the interface.
var _ driving.ConfigBuilder = (*ConfigBuilder)(nil)

// LookupEnvFunc matches os.LookupEnv.
type LookupEnvFunc func(key string) (string, bool)

// BuildConfig creates a Config from the process arguments.
// args[0] is the program name and is skipped; args[1] is the query and
// args[2] the file path. Further arguments are ignored.
//
// Case-insensitive search is enabled when IGNORE_CASE is present in the
// environment, whatever its value ("0" and "false" included).
func BuildConfig(args []string, lookupEnv LookupEnvFunc) (*domain.Config, error) {
	if len(args) < 2 {
		return nil, domain.ErrMissingQuery
	}
	if len(args) < 3 {
		return nil, domain.ErrMissingPath
	}

	_, ignoreCase := lookupEnv(domain.EnvIgnoreCase)

	return &domain.Config{
		Query:      args[1],
		Path:       args[2],
		IgnoreCase: ignoreCase,
	}, nil
}

// ConfigBuilder adapts BuildConfig to the driving port.
type ConfigBuilder struct {
	lookupEnv LookupEnvFunc
}

// NewConfigBuilder creates a builder reading from lookupEnv.
// A nil lookupEnv falls back to os.LookupEnv.
func NewConfigBuilder(lookupEnv LookupEnvFunc) *ConfigBuilder {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	return &ConfigBuilder{lookupEnv: lookupEnv}
}

// Build validates args and returns the run configuration.
func (b *ConfigBuilder) Build(args []string) (*domain.Config, error) {
	return BuildConfig(args, b.lookupEnv)
}
