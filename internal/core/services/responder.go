package services

import (
	"context"
	"errors"
	"strings"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

// Ensure Responder can use custom prompts.
var _ driven.PromptStoreAware = (*Responder)(nil)

// Responder turns a user message, retrieved context and history into a
// reply. It never fails: generation errors become localized fallback text.
type Responder struct {
	llm         driven.LLMService
	promptStore driven.PromptStore
	opts        driven.ChatOptions
}

// ResponderOption configures the responder.
type ResponderOption func(*Responder)

// WithChatOptions sets the completion parameters.
func WithChatOptions(opts driven.ChatOptions) ResponderOption {
	return func(r *Responder) {
		r.opts = opts
	}
}

// WithPromptStore loads system prompts from store instead of the built-in ones.
func WithPromptStore(store driven.PromptStore) ResponderOption {
	return func(r *Responder) {
		r.promptStore = store
	}
}

// NewResponder creates a responder. llm may be nil, in which case every
// reply is the "service unavailable" message.
func NewResponder(llm driven.LLMService, opts ...ResponderOption) *Responder {
	r := &Responder{
		llm: llm,
		opts: driven.ChatOptions{
			MaxTokens:   domain.DefaultLLMMaxTokens,
			Temperature: domain.DefaultLLMTemperature,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetPromptStore sets the prompt store for loading customisable prompts.
func (r *Responder) SetPromptStore(store driven.PromptStore) {
	r.promptStore = store
}

// ModelName returns the model used for generation, or "" without an LLM.
func (r *Responder) ModelName() string {
	if r.llm == nil {
		return ""
	}
	return r.llm.ModelName()
}

// Respond generates the assistant reply. The system prompt for language
// embeds contextText; history precedes the user message.
func (r *Responder) Respond(
	ctx context.Context,
	userMessage, contextText string,
	history []domain.Turn,
	language domain.Language,
) domain.Reply {
	if r.llm == nil {
		return domain.Reply{Text: UnavailableMessage}
	}

	language = language.OrDefault()
	messages := make([]driven.ChatMessage, 0, len(history)+2)
	messages = append(messages, driven.ChatMessage{Role: "system", Content: r.SystemPrompt(language, contextText)})
	for _, turn := range history {
		messages = append(messages, driven.ChatMessage{Role: turn.Role.String(), Content: turn.Content})
	}
	messages = append(messages, driven.ChatMessage{Role: "user", Content: userMessage})

	completion, err := r.llm.Chat(ctx, messages, r.opts)
	if err != nil {
		logger.Error("❌ Erreur LLM API: %v", err)
		return domain.Reply{Text: fallbackFor(language, err)}
	}
	return domain.Reply{Text: completion.Content, TokensUsed: completion.TotalTokens}
}

// SystemPrompt returns the system prompt for language with the context
// substituted for the placeholder.
func (r *Responder) SystemPrompt(language domain.Language, contextText string) string {
	name := driven.SystemPromptName(language.OrDefault().String())
	template := DefaultSystemPrompts()[name]
	if r.promptStore != nil {
		if custom, err := r.promptStore.Load(name); err == nil && custom != "" {
			template = custom
		} else if err != nil {
			logger.Debug("prompt %s: %v, using built-in", name, err)
		}
	}
	return strings.ReplaceAll(template, driven.PromptContextPlaceholder, contextText)
}

func fallbackFor(language domain.Language, err error) string {
	msgs, ok := fallbackMessages[language]
	if !ok {
		msgs = fallbackMessages[domain.DefaultLanguage]
	}
	if errors.Is(err, domain.ErrRateLimited) || strings.Contains(strings.ToLower(err.Error()), "rate_limit") {
		return msgs.rateLimited
	}
	return msgs.failed
}
