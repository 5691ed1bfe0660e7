package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk_Folder(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]any
		expected string
	}{
		{"present", map[string]any{MetaFolder: "Sénégal"}, "Sénégal"},
		{"absent", map[string]any{}, ""},
		{"nil metadata", nil, ""},
		{"wrong type", map[string]any{MetaFolder: 42}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Chunk{Metadata: tt.metadata}
			assert.Equal(t, tt.expected, c.Folder())
		})
	}
}

func TestChunk_Page(t *testing.T) {
	c := Chunk{Metadata: map[string]any{MetaPage: 3}}
	page, ok := c.Page()
	assert.True(t, ok)
	assert.Equal(t, 3, page)

	_, ok = Chunk{}.Page()
	assert.False(t, ok)
}

func TestChunk_HasKeyword(t *testing.T) {
	c := Chunk{Keywords: map[string]struct{}{"citoyenneté": {}}}

	assert.True(t, c.HasKeyword("citoyenneté"))
	assert.False(t, c.HasKeyword("citoyennete"))
}

func TestFolderOf(t *testing.T) {
	path := filepath.Join("knowledge_base", "Sénégal", "acteurs.csv")
	assert.Equal(t, "Sénégal", FolderOf(path))
	assert.Equal(t, ".", FolderOf("acteurs.csv"))
}

func TestExtensionOf(t *testing.T) {
	assert.Equal(t, ".pdf", ExtensionOf("Rapport.PDF"))
	assert.Equal(t, ".csv", ExtensionOf("dir/data.csv"))
	assert.Equal(t, "", ExtensionOf("README"))
}
