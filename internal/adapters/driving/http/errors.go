// Package http exposes the chatbot over a REST API built on gin: chat turns,
// session inspection and the admin endpoints, guarded by an X-API-Key header.
package http

import "errors"

var (
	// ErrMissingChatService is returned when the chat service is not provided.
	ErrMissingChatService = errors.New("http: chat service is required")

	// ErrMissingSessionService is returned when the session service is not provided.
	ErrMissingSessionService = errors.New("http: session service is required")

	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("http: search service is required")
)
