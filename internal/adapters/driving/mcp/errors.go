// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// chatbot. It lets AI assistants query the knowledge base directly.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
