package driving

import (
	"context"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

// IngestService builds the corpus from a knowledge base directory.
type IngestService interface {
	// Initialize walks root and appends every supported file's chunks to
	// the corpus. Per-file failures are reported in the summary, never
	// returned. A missing root yields an empty, initialized corpus.
	// The only error is context cancellation.
	Initialize(ctx context.Context, root string) (*domain.IngestSummary, error)
}
