package domain

import "time"

// Role identifies the author of a message.
type Role string

// Message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// String returns the string representation.
func (r Role) String() string {
	return string(r)
}

// Message is one immutable entry of a conversation.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Turn is a message stripped of its timestamp, as handed to the LLM.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session is a bounded, expiring conversation keyed by an opaque id.
type Session struct {
	// ID is caller supplied or generated.
	ID string

	// CreatedAt is when the session was first referenced.
	CreatedAt time.Time

	// LastActivity is refreshed on every lookup and append.
	LastActivity time.Time

	// Messages holds the most recent messages, oldest first.
	Messages []Message

	// TotalMessages counts every message ever appended. Eviction does not
	// reduce it.
	TotalMessages int
}

// Clone returns a copy that shares no mutable state with s.
func (s *Session) Clone() *Session {
	c := *s
	c.Messages = append([]Message(nil), s.Messages...)
	return &c
}

// Expired reports whether the session has been idle for longer than ttl.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastActivity) > ttl
}

// Active reports whether the session's last activity is within ttl.
func (s *Session) Active(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastActivity) < ttl
}
