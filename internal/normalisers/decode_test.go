package normalisers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

func TestUTF8_Strict(t *testing.T) {
	s, err := UTF8.Decode([]byte("pays,acteur\nSénégal,ACL\n"))
	require.NoError(t, err)
	assert.Equal(t, "pays,acteur\nSénégal,ACL\n", s)

	_, err = UTF8.Decode([]byte{'S', 0xe9, 'n'})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestUTF8_StripsBOM(t *testing.T) {
	s, err := UTF8.Decode([]byte("\xef\xbb\xbfnom,pays"))
	require.NoError(t, err)
	assert.Equal(t, "nom,pays", s)
}

func TestLatin1(t *testing.T) {
	s, err := Latin1.Decode([]byte{'S', 0xe9, 'n', 0xe9, 'g', 'a', 'l'})
	require.NoError(t, err)
	assert.Equal(t, "Sénégal", s)
}

func TestDecodePermissive(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"valid", []byte("citoyenneté"), "citoyenneté"},
		{"drops invalid bytes", []byte{'a', 0xff, 'b', 0xfe, 'c'}, "abc"},
		{"strips bom", []byte("\xef\xbb\xbfbonjour"), "bonjour"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodePermissive(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestDefaultEncodings_Order(t *testing.T) {
	names := make([]string, len(DefaultEncodings))
	for i, e := range DefaultEncodings {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"utf-8", "latin-1", "utf-8-sig"}, names)
}

func TestNewDocument(t *testing.T) {
	path := filepath.Join("kb", "Sénégal", "rapport.pdf")

	doc := NewDocument(path, "texte", map[string]any{domain.MetaPage: 4})

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "rapport.pdf", doc.SourceFile)
	assert.Equal(t, "texte", doc.Content)
	assert.Equal(t, "Sénégal", doc.Metadata[domain.MetaFolder])
	assert.Equal(t, 4, doc.Metadata[domain.MetaPage])
}
