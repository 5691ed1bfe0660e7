package driving

import (
	"context"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

// SearchService provides lexical retrieval to external actors.
type SearchService interface {
	// Search scores every chunk against query and returns the best matches,
	// highest score first.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// FormatContext renders results as one prompt-ready text block.
	FormatContext(results []domain.SearchResult) string

	// Stats returns aggregate corpus stats.
	Stats() domain.CorpusStats

	// Initialized reports whether the corpus has been built.
	Initialized() bool
}
