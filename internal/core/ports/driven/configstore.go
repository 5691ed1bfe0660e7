package driven

// ConfigStore is the flat key/value view of configuration that
// SettingsService resolves into domain.Settings. Keys are dot-notation
// paths such as "rag.top_k_results" or "llm.api_key". Typed getters
// return the zero value when the key is absent or holds another type;
// SettingsService treats zero as "use the default".
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	GetString(key string) string

	// GetInt accepts any numeric value, truncating floats.
	GetInt(key string) int

	GetFloat(key string) float64

	GetBool(key string) bool

	// GetStringSlice returns the string elements of a list value.
	GetStringSlice(key string) []string

	// Load re-reads the backing sources.
	Load() error

	// Path names the backing file, for display.
	Path() string
}
