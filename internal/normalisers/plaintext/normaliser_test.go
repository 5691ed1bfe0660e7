package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestNormaliser_Metadata(t *testing.T) {
	n := New()
	assert.Equal(t, "plaintext", n.Name())
	assert.Equal(t, []string{".txt"}, n.Extensions())
}

func TestNormalise_Success(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "general")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "acl.txt")
	require.NoError(t, os.WriteFile(path, []byte("AfricTivistes promeut la citoyenneté numérique"), 0o600))

	docs, err := New().Normalise(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "acl.txt", doc.SourceFile)
	assert.Equal(t, "AfricTivistes promeut la citoyenneté numérique", doc.Content)
	assert.Equal(t, "general", doc.Metadata[domain.MetaFolder])
}

func TestNormalise_InvalidBytesDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.txt")
	require.NoError(t, os.WriteFile(path, []byte{'o', 'k', 0xff, '!', 0xc3}, 0o600))

	docs, err := New().Normalise(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "ok!", docs[0].Content)
}

func TestNormalise_MissingFile(t *testing.T) {
	_, err := New().Normalise(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.Normaliser = (*Normaliser)(nil)
}
