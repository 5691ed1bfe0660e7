// Package keywords provides the processor that derives each chunk's keyword set.
package keywords

import (
	"context"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/textnorm"
)

var _ driven.PostProcessor = (*Processor)(nil)

// Processor fills Chunk.Keywords from the chunk's own raw content.
type Processor struct{}

// New creates a keywords processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "keywords"
}

// Process sets the keyword set of every chunk. Chunks are returned in order.
func (p *Processor) Process(_ context.Context, _ *domain.Document, chunks []domain.Chunk) ([]domain.Chunk, error) {
	for i := range chunks {
		chunks[i].Keywords = textnorm.Keywords(chunks[i].Content)
	}
	return chunks, nil
}
