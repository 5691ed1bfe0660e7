package domain

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero or negative selects the
	// configured top-K.
	Limit int

	// Filter restricts results to chunks whose folder or source file name
	// contains it, compared accent- and case-insensitively. Empty disables
	// filtering.
	Filter string
}

// SearchResult represents a single search hit.
type SearchResult struct {
	// Chunk is the chunk that matched.
	Chunk Chunk

	// Score is the lexical relevance score in (0, 1].
	Score float64
}
