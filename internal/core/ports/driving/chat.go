package driving

import (
	"context"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

// ChatService runs conversation turns and exposes their state.
type ChatService interface {
	// Chat answers one user message within a session.
	// Returns domain.ErrInvalidInput for an empty or oversized message or
	// an unsupported language. Generation failures never surface as errors.
	Chat(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error)

	// Snapshot returns the externally visible view of a session, or
	// domain.ErrNotFound.
	Snapshot(id string) (*domain.SessionSnapshot, error)

	// AdminStats combines session and corpus stats.
	AdminStats() domain.AdminStats

	// ModelName returns the generation model reported in responses.
	ModelName() string
}
