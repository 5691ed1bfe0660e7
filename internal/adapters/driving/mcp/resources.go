package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for chatbot resources.
	uriScheme = "acl://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "knowledge-base",
		Name:        "knowledge-base",
		Description: "Chunk counts per loaded knowledge base file",
		MIMEType:    "application/json",
	}, s.handleKnowledgeBaseResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sessions/{sessionId}",
		Name:        "session",
		Description: "History of a chat session",
		MIMEType:    "application/json",
	}, s.handleSessionResource)
}

// handleKnowledgeBaseResource returns the corpus stats as JSON.
func (s *Server) handleKnowledgeBaseResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.ports.Search.Stats(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stats: %w", err)
	}
	return jsonResult(req.Params.URI, data), nil
}

// handleSessionResource returns a session snapshot.
func (s *Server) handleSessionResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Chat == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// acl://sessions/{sessionId}
	sessionID := extractSessionID(req.Params.URI)
	if sessionID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	snapshot, err := s.ports.Chat.Snapshot(sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling session: %w", err)
	}
	return jsonResult(req.Params.URI, data), nil
}

func jsonResult(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}

// extractSessionID extracts the session ID from a URI like acl://sessions/{sessionId}.
func extractSessionID(uri string) string {
	const prefix = uriScheme + "sessions/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
