package driven

import (
	"context"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

// PostProcessor is one ingestion stage after a file has been normalised.
// The first stage of a pipeline receives nil chunks and cuts the document
// into chunks; later stages enrich the chunks they are given, e.g. with
// keywords.
type PostProcessor interface {
	// Name is the key used in the pipeline config.
	Name() string

	Process(ctx context.Context, doc *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error)
}

// PostProcessorPipeline turns one document into its final chunks.
type PostProcessorPipeline interface {
	Process(ctx context.Context, doc *domain.Document) ([]domain.Chunk, error)
}
