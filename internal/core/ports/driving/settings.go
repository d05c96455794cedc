package driving

import "github.com/custodia-labs/minigrep/internal/core/domain"

// SettingsService exposes the optional application settings.
type SettingsService interface {
	// Get retrieves current application settings, falling back to defaults.
	Get() (*domain.AppSettings, error)
}
