package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultConfigFile is read when no path is given.
const DefaultConfigFile = "config.toml"

// DefaultEnvFile is the dotenv file merged over the TOML values.
const DefaultEnvFile = ".env"

// ConfigStore is a file-based implementation of driven.ConfigStore.
// Values come from a TOML file, flattened to dot-notation keys, then
// recognised environment variables override them: first those in the
// .env file, then those of the process.
type ConfigStore struct {
	mu        sync.RWMutex
	filePath  string
	envFile   string
	lookupEnv func(string) (string, bool)
	data      map[string]any
}

// Option configures a ConfigStore.
type Option func(*ConfigStore)

// WithEnvFile sets the dotenv file. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(s *ConfigStore) {
		s.envFile = path
	}
}

// WithLookupEnv replaces os.LookupEnv, for tests.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(s *ConfigStore) {
		if fn != nil {
			s.lookupEnv = fn
		}
	}
}

// NewConfigStore creates a config store and loads it.
// If path is empty, DefaultConfigFile in the working directory is used.
// Missing files are not an error.
func NewConfigStore(path string, opts ...Option) (*ConfigStore, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	s := &ConfigStore{
		filePath:  path,
		envFile:   DefaultEnvFile,
		lookupEnv: os.LookupEnv,
		data:      make(map[string]any),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	// TOML integers are parsed as int64
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// GetFloat retrieves a floating point configuration value.
// TOML integers are accepted.
func (s *ConfigStore) GetFloat(key string) float64 {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// GetStringSlice retrieves a string slice configuration value.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, ok := s.Get(key)
	if !ok {
		return nil
	}

	// TOML arrays are parsed as []any
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}

// Load reads the TOML file and applies the environment overlay.
func (s *ConfigStore) Load() error {
	data, err := readTOML(s.filePath)
	if err != nil {
		return err
	}

	dotenv, err := readDotenv(s.envFile)
	if err != nil {
		return err
	}
	applyEnv(data, func(name string) (string, bool) {
		if v, ok := s.lookupEnv(name); ok {
			return v, true
		}
		v, ok := dotenv[name]
		return v, ok
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

func readTOML(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// No config file - defaults and environment only
			return make(map[string]any), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var loaded map[string]any
	if err := toml.Unmarshal(raw, &loaded); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if loaded == nil {
		return make(map[string]any), nil
	}

	// Flatten nested maps into dot-notation keys for easier access
	return flattenMap(loaded, ""), nil
}

func readDotenv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}
