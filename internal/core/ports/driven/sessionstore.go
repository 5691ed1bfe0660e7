package driven

import "github.com/DiengWinz/acl-chatbot-api/internal/core/domain"

// SessionStore keeps sessions keyed by id. Implementations store and
// return copies; callers write back changes with Save.
type SessionStore interface {
	// Get returns the session with id, or false if absent.
	Get(id string) (*domain.Session, bool)

	// Save inserts or replaces the session with the same id.
	Save(session *domain.Session)

	// Delete removes the session and reports whether it existed.
	Delete(id string) bool

	// List returns every stored session in no particular order.
	List() []*domain.Session

	// Len returns the number of stored sessions.
	Len() int
}
