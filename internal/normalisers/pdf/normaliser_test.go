package pdf

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
)

// mockExtractor is a test double for PageExtractor.
type mockExtractor struct {
	pages []string
	err   error
	path  string
}

func (m *mockExtractor) ExtractPages(_ context.Context, path string) ([]string, error) {
	m.path = path
	return m.pages, m.err
}

func TestNormaliser_Metadata(t *testing.T) {
	n := New(nil)
	assert.Equal(t, "pdf", n.Name())
	assert.Equal(t, []string{".pdf"}, n.Extensions())
}

func TestNormalise_NilExtractor(t *testing.T) {
	docs, err := New(nil).Normalise(context.Background(), "/kb/rapport.pdf")

	assert.ErrorIs(t, err, domain.ErrExtractorUnavailable)
	assert.Nil(t, docs)
}

func TestNormalise_Pages(t *testing.T) {
	ext := &mockExtractor{pages: []string{
		"Introduction au CiviTech",
		"   \n\t",
		"",
		"Conclusion",
	}}
	path := filepath.Join("kb", "rapports", "etude.pdf")

	docs, err := New(ext).Normalise(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, path, ext.path)

	assert.Equal(t, "Introduction au CiviTech", docs[0].Content)
	assert.Equal(t, 1, docs[0].Metadata[domain.MetaPage])
	assert.Equal(t, "Conclusion", docs[1].Content)
	assert.Equal(t, 4, docs[1].Metadata[domain.MetaPage])

	for _, d := range docs {
		assert.Equal(t, "etude.pdf", d.SourceFile)
		assert.Equal(t, "rapports", d.Metadata[domain.MetaFolder])
	}
}

func TestNormalise_NoPages(t *testing.T) {
	docs, err := New(&mockExtractor{}).Normalise(context.Background(), "empty.pdf")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestNormalise_ExtractorError(t *testing.T) {
	boom := errors.New("corrupt xref")

	_, err := New(&mockExtractor{err: boom}).Normalise(context.Background(), "bad.pdf")

	assert.ErrorIs(t, err, boom)
}

func TestExtractor_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o600))

	_, err := NewExtractor().ExtractPages(context.Background(), path)
	assert.Error(t, err)
}

func TestExtractor_MissingFile(t *testing.T) {
	_, err := NewExtractor().ExtractPages(context.Background(), filepath.Join(t.TempDir(), "none.pdf"))
	assert.Error(t, err)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
	var _ driven.PageExtractor = (*Extractor)(nil)
}
