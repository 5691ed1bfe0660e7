package domain

import "time"

const unknownDescription = "Unknown"

// Language is a two-letter response language code.
type Language string

// Supported response languages.
const (
	// LanguageFR is French, the default.
	LanguageFR Language = "fr"

	// LanguageEN is English.
	LanguageEN Language = "en"
)

// DefaultLanguage is used when no language, or an unknown one, is requested.
const DefaultLanguage = LanguageFR

// IsValid returns true if the language is supported.
func (l Language) IsValid() bool {
	switch l {
	case LanguageFR, LanguageEN:
		return true
	default:
		return false
	}
}

// OrDefault returns l when supported, DefaultLanguage otherwise.
func (l Language) OrDefault() Language {
	if l.IsValid() {
		return l
	}
	return DefaultLanguage
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}

// Description returns a human-readable name for the language.
func (l Language) Description() string {
	switch l {
	case LanguageFR:
		return "Français"
	case LanguageEN:
		return "English"
	default:
		return unknownDescription
	}
}

// AllLanguages returns every supported language.
func AllLanguages() []Language {
	return []Language{LanguageFR, LanguageEN}
}

// RAGSettings holds ingestion and retrieval configuration.
type RAGSettings struct {
	// KnowledgeBaseDir is the root directory walked at startup.
	KnowledgeBaseDir string

	// ChunkSize is the target chunk length in characters.
	ChunkSize int

	// ChunkOverlap is the number of words carried into the next chunk.
	ChunkOverlap int

	// TopK is the number of results returned when a search sets no limit.
	TopK int
}

// SessionSettings holds conversation store configuration.
type SessionSettings struct {
	// MaxHistoryLength is the number of messages retained per session.
	MaxHistoryLength int

	// TTL is the inactivity period after which a session expires.
	TTL time.Duration

	// SweepInterval is how often the server removes expired sessions.
	SweepInterval time.Duration
}

// LLMSettings holds generation provider configuration.
type LLMSettings struct {
	// Model is the chat model name.
	Model string

	// BaseURL is the OpenAI-compatible API endpoint.
	BaseURL string

	// APIKey authenticates against the provider.
	APIKey string

	// MaxTokens bounds the completion length.
	MaxTokens int

	// Temperature is the sampling temperature.
	Temperature float64

	// RequestsPerMinute is the client-side request budget.
	RequestsPerMinute int

	// Timeout bounds a single completion request.
	Timeout time.Duration
}

// IsConfigured returns true if the LLM provider can be called.
func (l LLMSettings) IsConfigured() bool {
	return l.APIKey != "" && l.Model != ""
}

// ServerSettings holds HTTP API configuration.
type ServerSettings struct {
	// Port is the TCP port the API listens on.
	Port int

	// APIKeys lists the accepted X-API-Key values.
	APIKeys []string
}

// Settings holds all application settings.
type Settings struct {
	// Environment is a free-form deployment label ("development", "production").
	Environment string

	RAG     RAGSettings
	Session SessionSettings
	LLM     LLMSettings
	Server  ServerSettings
}

// Default values for Settings.
const (
	DefaultKnowledgeBaseDir  = "knowledge_base"
	DefaultChunkSize         = 500
	DefaultChunkOverlap      = 50
	DefaultTopK              = 5
	DefaultMaxHistoryLength  = 20
	DefaultSessionTTL        = 60 * time.Minute
	DefaultSweepInterval     = 10 * time.Minute
	DefaultLLMModel          = "llama-3.3-70b-versatile"
	DefaultLLMBaseURL        = "https://api.groq.com/openai/v1"
	DefaultLLMMaxTokens      = 1024
	DefaultLLMTemperature    = 0.7
	DefaultRequestsPerMinute = 30
	DefaultLLMTimeout        = 60 * time.Second
	DefaultServerPort        = 8000
	DefaultAPIKey            = "acl-dev-key-2024"
	DefaultEnvironment       = "development"
)

// DefaultSettings returns settings with sensible defaults.
// The LLM API key is left empty; generation degrades to a fallback reply
// until one is configured.
func DefaultSettings() Settings {
	return Settings{
		Environment: DefaultEnvironment,
		RAG: RAGSettings{
			KnowledgeBaseDir: DefaultKnowledgeBaseDir,
			ChunkSize:        DefaultChunkSize,
			ChunkOverlap:     DefaultChunkOverlap,
			TopK:             DefaultTopK,
		},
		Session: SessionSettings{
			MaxHistoryLength: DefaultMaxHistoryLength,
			TTL:              DefaultSessionTTL,
			SweepInterval:    DefaultSweepInterval,
		},
		LLM: LLMSettings{
			Model:             DefaultLLMModel,
			BaseURL:           DefaultLLMBaseURL,
			MaxTokens:         DefaultLLMMaxTokens,
			Temperature:       DefaultLLMTemperature,
			RequestsPerMinute: DefaultRequestsPerMinute,
			Timeout:           DefaultLLMTimeout,
		},
		Server: ServerSettings{
			Port:    DefaultServerPort,
			APIKeys: []string{DefaultAPIKey},
		},
	}
}

// PipelineConfig holds post-processor pipeline configuration.
// Uses generic map-based config so new processors can be added
// without modifying this struct.
type PipelineConfig struct {
	// Processors is the ordered list of processor names to run.
	Processors []string

	// ProcessorConfigs holds per-processor configuration as generic maps.
	// Key is processor name, value is processor-specific config.
	ProcessorConfigs map[string]map[string]any
}

// GetProcessorConfig returns config for a specific processor, or nil if not set.
func (c *PipelineConfig) GetProcessorConfig(name string) map[string]any {
	if c.ProcessorConfigs == nil {
		return nil
	}
	return c.ProcessorConfigs[name]
}

// PipelineConfigFor returns the ingestion pipeline for the given RAG settings:
// word-window chunking followed by keyword extraction.
func PipelineConfigFor(rag RAGSettings) PipelineConfig {
	return PipelineConfig{
		Processors: []string{"chunker", "keywords"},
		ProcessorConfigs: map[string]map[string]any{
			"chunker": {
				"chunk_size": rag.ChunkSize,
				"overlap":    rag.ChunkOverlap,
			},
		},
	}
}

// DefaultPipelineConfig returns the pipeline for DefaultSettings.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfigFor(DefaultSettings().RAG)
}
