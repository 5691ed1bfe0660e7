package services

import (
	"time"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyEnvironment       = "app.environment"
	keyKnowledgeBaseDir  = "rag.knowledge_base_dir"
	keyChunkSize         = "rag.chunk_size"
	keyChunkOverlap      = "rag.chunk_overlap"
	keyTopK              = "rag.top_k_results"
	keyMaxHistory        = "session.max_history_length"
	keySessionTTL        = "session.ttl_minutes"
	keySweepInterval     = "session.sweep_interval_minutes"
	keyLLMModel          = "llm.model"
	keyLLMBaseURL        = "llm.base_url"
	keyLLMAPIKey         = "llm.api_key"
	keyLLMMaxTokens      = "llm.max_tokens"
	keyLLMTemperature    = "llm.temperature"
	keyLLMRequestsPerMin = "llm.requests_per_minute"
	keyLLMTimeout        = "llm.timeout_seconds"
	keyPromptDir         = "llm.prompt_dir"
	keyServerPort        = "server.port"
	keyServerAPIKeys     = "server.api_keys"
)

// SettingsService resolves application settings from a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings. Missing or invalid values
// fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Environment: s.getString(keyEnvironment, defaults.Environment),
		RAG: domain.RAGSettings{
			KnowledgeBaseDir: s.getString(keyKnowledgeBaseDir, defaults.RAG.KnowledgeBaseDir),
			ChunkSize:        s.getInt(keyChunkSize, defaults.RAG.ChunkSize),
			ChunkOverlap:     s.getNonNegativeInt(keyChunkOverlap, defaults.RAG.ChunkOverlap),
			TopK:             s.getInt(keyTopK, defaults.RAG.TopK),
		},
		Session: domain.SessionSettings{
			MaxHistoryLength: s.getInt(keyMaxHistory, defaults.Session.MaxHistoryLength),
			TTL:              s.getMinutes(keySessionTTL, defaults.Session.TTL),
			SweepInterval:    s.getMinutes(keySweepInterval, defaults.Session.SweepInterval),
		},
		LLM: domain.LLMSettings{
			Model:             s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL:           s.getString(keyLLMBaseURL, defaults.LLM.BaseURL),
			APIKey:            s.configStore.GetString(keyLLMAPIKey),
			MaxTokens:         s.getInt(keyLLMMaxTokens, defaults.LLM.MaxTokens),
			Temperature:       s.getTemperature(defaults.LLM.Temperature),
			RequestsPerMinute: s.getNonNegativeInt(keyLLMRequestsPerMin, defaults.LLM.RequestsPerMinute),
			Timeout:           s.getSeconds(keyLLMTimeout, defaults.LLM.Timeout),
		},
		Server: domain.ServerSettings{
			Port:    s.getPort(defaults.Server.Port),
			APIKeys: s.getStringSlice(keyServerAPIKeys, defaults.Server.APIKeys),
		},
	}

	return settings, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// PromptDir returns the directory holding user-editable prompts, or "" to
// use the built-in prompts only.
func (s *SettingsService) PromptDir() string {
	return s.configStore.GetString(keyPromptDir)
}

// GetPipelineConfig returns the post-processor pipeline configuration for
// rag. A "pipeline.processors" list and "pipeline.<name>.<key>" values
// override the defaults.
func (s *SettingsService) GetPipelineConfig(rag domain.RAGSettings) domain.PipelineConfig {
	cfg := domain.PipelineConfigFor(rag)

	if processors := s.configStore.GetStringSlice("pipeline.processors"); len(processors) > 0 {
		cfg.Processors = processors
	}

	for _, name := range cfg.Processors {
		overrides := s.loadProcessorConfig("pipeline." + name + ".")
		if len(overrides) == 0 {
			continue
		}
		existing := cfg.ProcessorConfigs[name]
		if existing == nil {
			existing = make(map[string]any)
		}
		for k, v := range overrides {
			existing[k] = v
		}
		cfg.ProcessorConfigs[name] = existing
	}

	return cfg
}

// loadProcessorConfig loads config keys with a given prefix into a map.
func (s *SettingsService) loadProcessorConfig(prefix string) map[string]any {
	cfg := make(map[string]any)

	knownKeys := []string{"chunk_size", "overlap"}
	for _, key := range knownKeys {
		if val, exists := s.configStore.Get(prefix + key); exists {
			cfg[key] = val
		}
	}

	return cfg
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getInt returns the value for key when positive, defaultVal otherwise.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

// getNonNegativeInt accepts an explicit zero.
func (s *SettingsService) getNonNegativeInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getMinutes(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Minute
}

func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return time.Duration(val) * time.Second
}

func (s *SettingsService) getTemperature(defaultVal float64) float64 {
	if _, exists := s.configStore.Get(keyLLMTemperature); !exists {
		return defaultVal
	}
	val := s.configStore.GetFloat(keyLLMTemperature)
	if val < 0 || val > 2 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPort(defaultVal int) int {
	val := s.configStore.GetInt(keyServerPort)
	if val <= 0 || val > 65535 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return append([]string(nil), defaultVal...)
	}
	return val
}
