package http

import (
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driving"
)

// Ports aggregates the driving ports the API serves.
type Ports struct {
	// Chat runs conversation turns and builds session snapshots.
	Chat driving.ChatService

	// Sessions deletes and sweeps sessions.
	Sessions driving.SessionService

	// Search reports knowledge base state.
	Search driving.SearchService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.Sessions == nil {
		return ErrMissingSessionService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}

// Config carries the values the API reports or enforces.
type Config struct {
	// Version is reported by the root and health endpoints.
	Version string

	// Environment is reported by the health endpoint.
	Environment string

	// APIKeys lists the accepted X-API-Key values.
	APIKeys []string
}
