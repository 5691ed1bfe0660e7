package driven

import (
	"context"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

// Normaliser extracts documents from one file format.
// Each normaliser handles a fixed set of file extensions.
type Normaliser interface {
	// Name returns the format name for logging ("tabular", "pdf").
	Name() string

	// Extensions returns the lower-case extensions handled, dot included.
	Extensions() []string

	// Normalise reads the file at path and returns its documents.
	// A file may yield several documents (one per CSV row or PDF page)
	// or none. Each document carries folder metadata.
	Normalise(ctx context.Context, path string) ([]domain.Document, error)
}

// PageExtractor returns the text of each page of a paginated file, in order.
type PageExtractor interface {
	ExtractPages(ctx context.Context, path string) ([]string, error)
}
