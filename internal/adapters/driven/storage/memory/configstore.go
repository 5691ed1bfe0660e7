// Package memory provides in-memory implementations of the driven storage
// ports: the corpus, the session store, and a config store for tests.
package memory

import (
	"maps"
	"sync"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps dot-notation settings in a map. Typed getters return
// the zero value for missing keys and for values of the wrong type, the
// same contract as the file-backed store, so services can be tested
// without touching disk.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return NewConfigStoreFrom(nil)
}

// NewConfigStoreFrom returns a store seeded with a copy of values.
func NewConfigStoreFrom(values map[string]any) *ConfigStore {
	seeded := make(map[string]any, len(values))
	maps.Copy(seeded, values)
	return &ConfigStore{values: seeded}
}

// Get returns the raw value stored under key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString returns key as a string.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt returns key as an int; TOML integers and JSON floats both count.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	n, _ := toFloat(val)
	return int(n)
}

// GetFloat returns key as a float64.
func (s *ConfigStore) GetFloat(key string) float64 {
	val, _ := s.Get(key)
	f, _ := toFloat(val)
	return f
}

// GetBool returns key as a bool.
func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	b, _ := val.(bool)
	return b
}

// GetStringSlice returns the string elements of a list value. Non-string
// elements are dropped.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, ok := s.Get(key)
	if !ok {
		return nil
	}
	switch v := val.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Set stores value under key.
func (s *ConfigStore) Set(key string, value any) {
	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()
}

// Load is a no-op; there is nothing to reload.
func (s *ConfigStore) Load() error {
	return nil
}

// Path identifies the store in settings output.
func (s *ConfigStore) Path() string {
	return ":memory:"
}

func toFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
