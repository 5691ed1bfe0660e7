// Package plaintext provides the .txt normaliser.
package plaintext

import (
	"context"
	"fmt"
	"os"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the format name.
func (n *Normaliser) Name() string {
	return "plaintext"
}

// Extensions returns the file extensions this normaliser handles.
func (n *Normaliser) Extensions() []string {
	return []string{".txt"}
}

// Normalise reads the whole file as one document. Invalid UTF-8 sequences
// are dropped rather than failing the file.
// Chunking is handled by the PostProcessor pipeline.
func (n *Normaliser) Normalise(_ context.Context, path string) ([]domain.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	content, err := normalisers.DecodePermissive(raw)
	if err != nil {
		return nil, err
	}

	return []domain.Document{normalisers.NewDocument(path, content, nil)}, nil
}
