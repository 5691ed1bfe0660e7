package mcp

import (
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides retrieval and corpus stats.
	Search driving.SearchService

	// Chat exposes session snapshots. Optional.
	Chat driving.ChatService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
