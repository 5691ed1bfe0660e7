// Package tui provides an interactive terminal chat with the knowledge base
// assistant. It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Chat runs conversation turns.
	Chat driving.ChatService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	return nil
}

// Options configures the conversation the TUI opens.
type Options struct {
	// SessionID resumes an existing session. Empty starts a new one.
	SessionID string

	// Language selects the reply language.
	Language domain.Language

	// Filter restricts retrieval to a country folder or file name.
	Filter string
}
