package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driving"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

// Ensure ChatService implements the interface.
var _ driving.ChatService = (*ChatService)(nil)

// ChatService runs one conversation turn: session bookkeeping, retrieval,
// generation and source formatting.
type ChatService struct {
	sessions  driving.SessionService
	search    driving.SearchService
	responder *Responder
	model     string
}

// ChatOption configures the chat service.
type ChatOption func(*ChatService)

// WithModelName sets the model reported in responses when the responder
// has no LLM to ask.
func WithModelName(model string) ChatOption {
	return func(c *ChatService) {
		c.model = model
	}
}

// NewChatService creates a new chat service.
func NewChatService(
	sessions driving.SessionService,
	search driving.SearchService,
	responder *Responder,
	opts ...ChatOption,
) *ChatService {
	c := &ChatService{
		sessions:  sessions,
		search:    search,
		responder: responder,
		model:     domain.DefaultLLMModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chat answers req.Message within req.SessionID, creating the session when
// needed. Generation failures are reported as reply text, never as errors.
func (c *ChatService) Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	language, err := validateChatRequest(req)
	if err != nil {
		return nil, err
	}

	session := c.sessions.GetOrCreate(req.SessionID)
	c.sessions.AppendMessage(session.ID, domain.RoleUser, req.Message)

	results, err := c.search.Search(ctx, req.Message, domain.SearchOptions{Filter: req.Filter})
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	contextText := c.search.FormatContext(results)
	history := c.sessions.History(session.ID)

	reply := c.responder.Respond(ctx, req.Message, contextText, history, language)
	c.sessions.AppendMessage(session.ID, domain.RoleAssistant, reply.Text)

	sources := make([]domain.Source, len(results))
	for i, r := range results {
		sources[i] = domain.Source{
			Content:        Snippet(r.Chunk.Content, domain.SourceSnippetLength),
			SourceFile:     r.Chunk.SourceFile,
			RelevanceScore: RoundScore(r.Score),
		}
	}

	logger.Info("💬 Session %s... | %d sources | %s tokens", shortID(session.ID), len(results), tokensLabel(reply.TokensUsed))

	return &domain.ChatResponse{
		SessionID:  session.ID,
		Response:   reply.Text,
		Language:   language,
		Sources:    sources,
		TokensUsed: reply.TokensUsed,
		Model:      c.ModelName(),
	}, nil
}

// Snapshot returns the externally visible view of a session.
func (c *ChatService) Snapshot(id string) (*domain.SessionSnapshot, error) {
	session, err := c.sessions.Info(id)
	if err != nil {
		return nil, err
	}
	history := session.Messages
	if history == nil {
		history = []domain.Message{}
	}
	return &domain.SessionSnapshot{
		ID:           session.ID,
		MessageCount: session.TotalMessages,
		CreatedAt:    session.CreatedAt,
		LastActivity: session.LastActivity,
		History:      history,
	}, nil
}

// AdminStats combines session and corpus stats.
func (c *ChatService) AdminStats() domain.AdminStats {
	sessions := c.sessions.Stats()
	return domain.AdminStats{
		TotalSessions:  sessions.TotalSessions,
		ActiveSessions: sessions.ActiveSessions,
		TotalMessages:  sessions.TotalMessages,
		KnowledgeBase:  c.search.Stats(),
	}
}

// ModelName returns the generation model reported in responses.
func (c *ChatService) ModelName() string {
	if c.responder != nil {
		if name := c.responder.ModelName(); name != "" {
			return name
		}
	}
	return c.model
}

func validateChatRequest(req domain.ChatRequest) (domain.Language, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(req.Message); n > domain.MaxMessageLength {
		return "", fmt.Errorf("%w: message has %d characters, maximum is %d",
			domain.ErrInvalidInput, n, domain.MaxMessageLength)
	}
	if req.Language == "" {
		return domain.DefaultLanguage, nil
	}
	if !req.Language.IsValid() {
		return "", fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, req.Language)
	}
	return req.Language, nil
}

// Snippet returns the first n characters of s followed by "..." when s is
// longer than n characters.
func Snippet(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

// RoundScore rounds a relevance score to three decimals.
func RoundScore(score float64) float64 {
	return math.Round(score*1000) / 1000
}

func shortID(id string) string {
	if utf8.RuneCountInString(id) <= 8 {
		return id
	}
	return string([]rune(id)[:8])
}

func tokensLabel(tokens *int) string {
	if tokens == nil {
		return "None"
	}
	return fmt.Sprint(*tokens)
}
