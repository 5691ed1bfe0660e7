package driven

import "github.com/DiengWinz/acl-chatbot-api/internal/core/domain"

// CorpusStore holds every ingested chunk in insertion order.
// It is filled once at startup and read concurrently afterwards.
type CorpusStore interface {
	// Append adds chunks at the end of the corpus and updates stats.
	Append(chunks ...domain.Chunk)

	// Chunks returns the chunks in insertion order. Callers must not
	// modify the returned slice.
	Chunks() []domain.Chunk

	// Len returns the number of chunks.
	Len() int

	// Stats returns aggregate stats, always equal to
	// domain.ComputeCorpusStats(Chunks()).
	Stats() domain.CorpusStats

	// MarkInitialized records that ingestion has completed.
	MarkInitialized()

	// Initialized reports whether ingestion has completed.
	Initialized() bool
}
