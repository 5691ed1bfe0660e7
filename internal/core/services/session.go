package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driving"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService manages bounded, expiring conversations on top of a
// SessionStore. Every read-modify-write of a session happens under one
// mutex, so concurrent handlers never interleave on the same session.
type SessionService struct {
	mu         sync.Mutex
	store      driven.SessionStore
	maxHistory int
	ttl        time.Duration
	now        func() time.Time
	newID      func() string
}

// SessionOption configures the session service.
type SessionOption func(*SessionService)

// WithMaxHistory sets how many messages a session retains.
func WithMaxHistory(n int) SessionOption {
	return func(s *SessionService) {
		if n > 0 {
			s.maxHistory = n
		}
	}
}

// WithTTL sets the inactivity period after which a session expires.
func WithTTL(ttl time.Duration) SessionOption {
	return func(s *SessionService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) SessionOption {
	return func(s *SessionService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how new session ids are generated.
func WithIDGenerator(gen func() string) SessionOption {
	return func(s *SessionService) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewSessionService creates a new session service backed by store.
func NewSessionService(store driven.SessionStore, opts ...SessionOption) *SessionService {
	s := &SessionService{
		store:      store,
		maxHistory: domain.DefaultMaxHistoryLength,
		ttl:        domain.DefaultSessionTTL,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOrCreate returns the session with id, refreshing its last activity.
// An unknown id creates a session with that id; an empty id creates one
// with a generated id.
func (s *SessionService) GetOrCreate(id string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(id).Clone()
}

func (s *SessionService) getOrCreateLocked(id string) *domain.Session {
	now := s.now()
	if id != "" {
		if session, ok := s.store.Get(id); ok {
			session.LastActivity = now
			s.store.Save(session)
			return session
		}
	} else {
		id = s.newID()
	}

	session := &domain.Session{
		ID:           id,
		CreatedAt:    now,
		LastActivity: now,
	}
	s.store.Save(session)
	logger.Info("📝 Nouvelle session : %s", id)
	return session
}

// AppendMessage adds a message to the session, creating it if needed.
// The all-time counter always grows; only the most recent messages up to
// the history limit are retained.
func (s *SessionService) AppendMessage(id string, role domain.Role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.getOrCreateLocked(id)
	now := s.now()
	session.Messages = append(session.Messages, domain.Message{
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
	session.TotalMessages++
	session.LastActivity = now

	if excess := len(session.Messages) - s.maxHistory; excess > 0 {
		session.Messages = append([]domain.Message(nil), session.Messages[excess:]...)
	}
	s.store.Save(session)
}

// History returns every retained message except the most recent one,
// without timestamps. Unknown sessions have no history.
func (s *SessionService) History(id string) []domain.Turn {
	s.mu.Lock()
	session, ok := s.store.Get(id)
	s.mu.Unlock()

	if !ok || len(session.Messages) < 2 {
		return []domain.Turn{}
	}

	prior := session.Messages[:len(session.Messages)-1]
	turns := make([]domain.Turn, len(prior))
	for i, m := range prior {
		turns[i] = domain.Turn{Role: m.Role, Content: m.Content}
	}
	return turns
}

// Info returns a copy of the session or domain.ErrNotFound.
func (s *SessionService) Info(id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.store.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

// Delete removes the session and reports whether it existed.
func (s *SessionService) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Delete(id)
}

// SweepExpired removes every session idle for longer than the TTL.
func (s *SessionService) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for _, session := range s.store.List() {
		if session.Expired(now, s.ttl) && s.store.Delete(session.ID) {
			removed++
		}
	}
	if removed > 0 {
		logger.Info("🧹 %d sessions expirées supprimées", removed)
	}
	return removed
}

// Stats returns aggregate session stats. Active sessions are those idle
// for less than the TTL; total messages sums the all-time counters.
func (s *SessionService) Stats() domain.SessionStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sessions := s.store.List()
	stats := domain.SessionStats{TotalSessions: len(sessions)}
	for _, session := range sessions {
		if session.Active(now, s.ttl) {
			stats.ActiveSessions++
		}
		stats.TotalMessages += session.TotalMessages
	}
	return stats
}
