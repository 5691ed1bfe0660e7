package driven

import "context"

// LLMService provides chat completions for answer generation.
// This is an optional service - when nil, replies degrade to a fixed
// "service unavailable" text.
//
// Implementations may include any OpenAI-compatible endpoint:
//   - Groq (default)
//   - OpenAI
//   - Ollama or LM Studio (local inference servers)
type LLMService interface {
	// Chat conducts a multi-turn conversation.
	// Rate limit rejections wrap domain.ErrRateLimited.
	Chat(ctx context.Context, messages []ChatMessage, opts ChatOptions) (*Completion, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	// Role is one of "system", "user", or "assistant".
	Role string

	// Content is the message text.
	Content string
}

// ChatOptions configures chat behaviour.
type ChatOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}

// Completion is the result of a chat request.
type Completion struct {
	// Content is the assistant's reply.
	Content string

	// TotalTokens is the provider-reported usage, nil when not reported.
	TotalTokens *int
}
