package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driving"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
	"github.com/DiengWinz/acl-chatbot-api/internal/textnorm"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Scoring constants for lexical search.
const (
	// flatScore is given to every candidate when the query has no keywords.
	flatScore = 0.1

	// substringBonus is added per query keyword found anywhere in the content.
	substringBonus = 0.05

	// maxScore caps a chunk's score.
	maxScore = 1.0
)

// NoContextMessage is returned by FormatContext when there are no results.
const NoContextMessage = "Aucun contexte trouvé dans la knowledge base."

// contextSeparator separates source blocks in the formatted context.
const contextSeparator = "\n\n---\n\n"

// SearchService provides lexical search over the in-memory corpus.
type SearchService struct {
	corpus driven.CorpusStore
	topK   int
}

// SearchOption configures the search service.
type SearchOption func(*SearchService)

// WithTopK sets the result count used when a search has no limit.
func WithTopK(k int) SearchOption {
	return func(s *SearchService) {
		if k > 0 {
			s.topK = k
		}
	}
}

// NewSearchService creates a new search service over corpus.
func NewSearchService(corpus driven.CorpusStore, opts ...SearchOption) *SearchService {
	s := &SearchService{
		corpus: corpus,
		topK:   domain.DefaultTopK,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search scores every chunk against query and returns up to the limit,
// highest score first. Equal scores keep corpus order.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	chunks := s.corpus.Chunks()
	if len(chunks) == 0 {
		logger.Debug("Empty corpus, returning no results")
		return []domain.SearchResult{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.topK
	}

	keywords := textnorm.QueryKeywords(query)
	filter := textnorm.Normalize(opts.Filter)
	logger.Debug("Keywords: %v, Filter: %q, Limit: %d", sortedKeys(keywords), filter, limit)

	results := make([]domain.SearchResult, 0, limit)
	for i, chunk := range chunks {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("search: %w", err)
			}
		}
		if filter != "" && !matchesFilter(chunk, filter) {
			continue
		}
		score := Score(keywords, chunk.Content)
		if score <= 0 {
			continue
		}
		results = append(results, domain.SearchResult{Chunk: chunk, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	logger.Debug("Candidates kept: %d", len(results))
	return results, nil
}

// Score computes the lexical relevance of content for the query keywords.
// The overlap ratio counts whole normalized tokens; every keyword that also
// appears as a substring of the normalized content adds a bonus on top,
// so a keyword can count twice. The result is capped at 1.0.
func Score(keywords map[string]struct{}, content string) float64 {
	if len(keywords) == 0 {
		return flatScore
	}

	normalized := textnorm.Normalize(content)
	tokens := textnorm.TokenSet(normalized)

	common := 0
	bonus := 0.0
	for kw := range keywords {
		if _, ok := tokens[kw]; ok {
			common++
		}
		if strings.Contains(normalized, kw) {
			bonus += substringBonus
		}
	}

	score := float64(common)/float64(len(keywords)) + bonus
	if score > maxScore {
		score = maxScore
	}
	return score
}

// matchesFilter reports whether the normalized filter occurs in the
// chunk's folder or source file name.
func matchesFilter(chunk domain.Chunk, filter string) bool {
	return strings.Contains(textnorm.Normalize(chunk.Folder()), filter) ||
		strings.Contains(textnorm.Normalize(chunk.SourceFile), filter)
}

// FormatContext renders results as labelled source blocks in input order.
func (s *SearchService) FormatContext(results []domain.SearchResult) string {
	return FormatContext(results)
}

// FormatContext renders results as labelled source blocks in input order.
func FormatContext(results []domain.SearchResult) string {
	if len(results) == 0 {
		return NoContextMessage
	}

	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = fmt.Sprintf("[Source %d - %s]\n%s", i+1, r.Chunk.SourceFile, r.Chunk.Content)
	}
	return strings.Join(parts, contextSeparator)
}

// Stats returns aggregate corpus stats.
func (s *SearchService) Stats() domain.CorpusStats {
	return s.corpus.Stats()
}

// Initialized reports whether the corpus has been built.
func (s *SearchService) Initialized() bool {
	return s.corpus.Initialized()
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
