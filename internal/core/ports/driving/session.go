package driving

import "github.com/DiengWinz/acl-chatbot-api/internal/core/domain"

// SessionService manages bounded, expiring conversations.
type SessionService interface {
	// GetOrCreate returns the session with id, refreshing its activity,
	// or creates it. An empty id creates a session with a generated id.
	GetOrCreate(id string) *domain.Session

	// AppendMessage adds a message, creating the session if needed, and
	// evicts the oldest messages beyond the history limit.
	AppendMessage(id string, role domain.Role, content string)

	// History returns the retained messages except the most recent one.
	History(id string) []domain.Turn

	// Info returns the session or domain.ErrNotFound.
	Info(id string) (*domain.Session, error)

	// Delete removes the session and reports whether it existed.
	Delete(id string) bool

	// SweepExpired removes sessions idle for longer than the TTL and
	// returns how many were removed.
	SweepExpired() int

	// Stats returns aggregate session stats.
	Stats() domain.SessionStats
}
