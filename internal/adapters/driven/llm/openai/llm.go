// Package openai provides an LLM service adapter for OpenAI-compatible
// chat completion APIs such as Groq.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

// Ensure LLMService implements the interface.
var _ driven.LLMService = (*LLMService)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = domain.DefaultLLMBaseURL
	DefaultLLMModel   = domain.DefaultLLMModel
	DefaultLLMTimeout = domain.DefaultLLMTimeout
)

// LLMConfig holds configuration for the LLM service.
type LLMConfig struct {
	// APIKey is the provider API key (required).
	APIKey string

	// BaseURL is the API base URL (default: Groq's OpenAI-compatible endpoint).
	BaseURL string

	// Model is the chat model to use (default: llama-3.3-70b-versatile).
	Model string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration

	// RequestsPerMinute throttles outgoing requests. Zero disables throttling.
	RequestsPerMinute int

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// LLMService provides chat completions over the OpenAI wire protocol.
type LLMService struct {
	client  oai.Client
	model   string
	limiter *rate.Limiter
}

// NewLLMService creates a new LLM service.
func NewLLMService(cfg LLMConfig) (*LLMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.Model == "" {
		cfg.Model = DefaultLLMModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultLLMTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithRequestTimeout(cfg.Timeout),
		// 429s are reported to the caller instead of retried.
		option.WithMaxRetries(0),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	return &LLMService{
		client:  oai.NewClient(opts...),
		model:   cfg.Model,
		limiter: limiter,
	}, nil
}

// Chat conducts a multi-turn conversation.
func (s *LLMService) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (*driven.Completion, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("openai: wait for rate limiter: %w", err)
		}
	}

	params := oai.ChatCompletionNewParams{
		Model:    oai.ChatModel(s.model),
		Messages: toParams(messages),
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = oai.Int(int64(opts.MaxTokens))
	}
	if opts.Temperature > 0 {
		params.Temperature = oai.Float(opts.Temperature)
	}

	logger.Debug("openai: chat completion model=%s messages=%d", s.model, len(messages))

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no response choices returned")
	}

	completion := &driven.Completion{Content: resp.Choices[0].Message.Content}
	if resp.Usage.TotalTokens > 0 {
		total := int(resp.Usage.TotalTokens)
		completion.TotalTokens = &total
	}
	return completion, nil
}

// ModelName returns the name of the LLM model being used.
func (s *LLMService) ModelName() string {
	return s.model
}

// Ping validates the service is reachable by listing models.
// This validates the API key without running inference.
func (s *LLMService) Ping(ctx context.Context) error {
	if _, err := s.client.Models.List(ctx); err != nil {
		return fmt.Errorf("openai: ping failed: %w", classify(err))
	}
	return nil
}

// Close releases resources.
func (s *LLMService) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}

func toParams(messages []driven.ChatMessage) []oai.ChatCompletionMessageParamUnion {
	out := make([]oai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case "system":
			out = append(out, oai.SystemMessage(msg.Content))
		case "assistant":
			out = append(out, oai.AssistantMessage(msg.Content))
		default:
			out = append(out, oai.UserMessage(msg.Content))
		}
	}
	return out
}

// classify wraps provider rate limit rejections with domain.ErrRateLimited.
func classify(err error) error {
	var apiErr *oai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	}
	if strings.Contains(strings.ToLower(err.Error()), "rate_limit") {
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	}
	return fmt.Errorf("openai: %w", err)
}
