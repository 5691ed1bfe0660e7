// Package pdf provides the paginated-document normaliser. Page text comes
// from a PageExtractor; each non-blank page becomes one document tagged
// with its 1-based page number.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles PDF documents.
type Normaliser struct {
	extractor driven.PageExtractor
}

// New creates a PDF normaliser backed by the given extractor.
// A nil extractor is allowed: every file then fails with
// domain.ErrExtractorUnavailable and contributes no chunks.
func New(extractor driven.PageExtractor) *Normaliser {
	return &Normaliser{extractor: extractor}
}

// NewDefault creates a PDF normaliser using the built-in extractor.
func NewDefault() *Normaliser {
	return New(NewExtractor())
}

// Name returns the format name.
func (n *Normaliser) Name() string {
	return "pdf"
}

// Extensions returns the file extensions this normaliser handles.
func (n *Normaliser) Extensions() []string {
	return []string{".pdf"}
}

// Normalise extracts every page and returns one document per non-blank page.
func (n *Normaliser) Normalise(ctx context.Context, path string) ([]domain.Document, error) {
	if n.extractor == nil {
		return nil, domain.ErrExtractorUnavailable
	}

	pages, err := n.extractor.ExtractPages(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract pages: %w", err)
	}

	var docs []domain.Document
	for i, text := range pages {
		if strings.TrimSpace(text) == "" {
			continue
		}
		docs = append(docs, normalisers.NewDocument(path, text, map[string]any{
			domain.MetaPage: i + 1,
		}))
	}
	return docs, nil
}
