// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

// MessageSubmitted is sent when the user submits a question.
type MessageSubmitted struct {
	Text string
}

// ReplyReceived carries the outcome of a chat turn back to the model.
type ReplyReceived struct {
	Response *domain.ChatResponse
	Err      error
}
