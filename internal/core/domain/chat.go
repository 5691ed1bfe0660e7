package domain

import "time"

// MaxMessageLength is the longest user message a chat turn accepts, in characters.
const MaxMessageLength = 2000

// SourceSnippetLength is the number of characters of a chunk echoed back as
// a source in a chat response.
const SourceSnippetLength = 300

// ChatRequest is one user turn.
type ChatRequest struct {
	// Message is the user's question.
	Message string `json:"message"`

	// SessionID selects an existing conversation. Empty starts a new one.
	SessionID string `json:"session_id,omitempty"`

	// Language selects the reply language. Empty means DefaultLanguage.
	Language Language `json:"language,omitempty"`

	// Filter restricts retrieval to matching folders or file names.
	Filter string `json:"country_filter,omitempty"`
}

// Source is a retrieved chunk as exposed to API clients.
type Source struct {
	Content        string  `json:"content"`
	SourceFile     string  `json:"source_file"`
	RelevanceScore float64 `json:"relevance_score"`
}

// ChatResponse is the outcome of a chat turn.
type ChatResponse struct {
	SessionID  string   `json:"session_id"`
	Response   string   `json:"response"`
	Language   Language `json:"language"`
	Sources    []Source `json:"sources"`
	TokensUsed *int     `json:"tokens_used"`
	Model      string   `json:"model"`
}

// Reply is the output of the generation step. It is always well formed:
// failures are turned into fallback text with a nil token count.
type Reply struct {
	Text       string
	TokensUsed *int
}

// SessionSnapshot is the externally visible view of a session.
type SessionSnapshot struct {
	ID           string    `json:"session_id"`
	MessageCount int       `json:"message_count"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
	History      []Message `json:"history"`
}

// AdminStats combines session and corpus statistics.
type AdminStats struct {
	TotalSessions  int         `json:"total_sessions"`
	ActiveSessions int         `json:"active_sessions"`
	TotalMessages  int         `json:"total_messages"`
	KnowledgeBase  CorpusStats `json:"knowledge_base_stats"`
}
