package driving

import "github.com/DiengWinz/acl-chatbot-api/internal/core/domain"

// SettingsService resolves application settings.
type SettingsService interface {
	// Get returns settings assembled from configuration with defaults
	// applied to missing or invalid values.
	Get() (*domain.Settings, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
