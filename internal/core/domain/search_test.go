package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSearchOptions_DefaultValues tests SearchOptions with zero values
func TestSearchOptions_DefaultValues(t *testing.T) {
	opts := SearchOptions{}

	assert.Equal(t, 0, opts.Limit)
	assert.Empty(t, opts.Filter)
}

func TestSearchResult_CarriesChunk(t *testing.T) {
	result := SearchResult{
		Chunk: Chunk{
			Content:    "AfricTivistes promeut la citoyenneté numérique",
			SourceFile: "acl.txt",
			Metadata:   map[string]any{MetaFolder: "general"},
		},
		Score: 1.0,
	}

	assert.Equal(t, "acl.txt", result.Chunk.SourceFile)
	assert.Equal(t, "general", result.Chunk.Folder())
	assert.InDelta(t, 1.0, result.Score, 1e-9)
}
