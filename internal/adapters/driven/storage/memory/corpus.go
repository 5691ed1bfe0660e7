package memory

import (
	"sync"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an in-memory, insertion-ordered implementation of
// driven.CorpusStore. Stats are maintained as chunks are appended.
type CorpusStore struct {
	mu          sync.RWMutex
	chunks      []domain.Chunk
	perFile     map[string]int
	initialized bool
}

// NewCorpusStore creates an empty corpus.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{
		perFile: make(map[string]int),
	}
}

// Append adds chunks at the end of the corpus.
func (s *CorpusStore) Append(chunks ...domain.Chunk) {
	if len(chunks) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunks...)
	for _, c := range chunks {
		s.perFile[c.SourceFile]++
	}
}

// Chunks returns the chunks in insertion order.
// The returned slice is shared and must not be modified.
func (s *CorpusStore) Chunks() []domain.Chunk {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chunks[:len(s.chunks):len(s.chunks)]
}

// Len returns the number of chunks.
func (s *CorpusStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chunks)
}

// Stats returns a copy of the aggregate stats.
func (s *CorpusStore) Stats() domain.CorpusStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CorpusStats{
		TotalChunks: len(s.chunks),
		FilesLoaded: len(s.perFile),
		FileDetails: s.perFile,
	}.Clone()
}

// MarkInitialized records that ingestion has completed.
func (s *CorpusStore) MarkInitialized() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = true
}

// Initialized reports whether ingestion has completed.
func (s *CorpusStore) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}
