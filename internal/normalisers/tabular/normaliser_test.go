package tabular

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/normalisers"
)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestNormaliser_Metadata(t *testing.T) {
	n := New()
	assert.Equal(t, "tabular", n.Name())
	assert.Equal(t, []string{".csv"}, n.Extensions())
}

func TestNormalise_Rows(t *testing.T) {
	path := writeFile(t, t.TempDir(), filepath.Join("Sénégal", "acteurs.csv"), []byte(
		"nom,pays,domaine\n"+
			"Jokkolabs,Sénégal,innovation\n"+
			"Africtivistes,,démocratie\n"+
			" , ,\n"+
			"\n"+
			"\"Y'en a marre\",Sénégal,\"mobilisation, jeunesse\"\n"))

	docs, err := New().Normalise(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, "nom: Jokkolabs | pays: Sénégal | domaine: innovation", docs[0].Content)
	assert.Equal(t, "nom: Africtivistes | domaine: démocratie", docs[1].Content)
	assert.Equal(t, "nom: Y'en a marre | pays: Sénégal | domaine: mobilisation, jeunesse", docs[2].Content)

	for _, d := range docs {
		assert.Equal(t, "acteurs.csv", d.SourceFile)
		assert.Equal(t, "Sénégal", d.Metadata[domain.MetaFolder])
		assert.NotEmpty(t, d.ID)
	}
}

func TestNormalise_Latin1Fallback(t *testing.T) {
	// "pays\nSénégal\n" encoded as ISO 8859-1.
	content := []byte{'p', 'a', 'y', 's', '\n', 'S', 0xe9, 'n', 0xe9, 'g', 'a', 'l', '\n'}
	path := writeFile(t, t.TempDir(), "latin.csv", content)

	docs, err := New().Normalise(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "pays: Sénégal", docs[0].Content)
}

func TestNormalise_BOMStripped(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bom.csv", []byte("\xef\xbb\xbfnom\nACL\n"))

	docs, err := New().Normalise(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "nom: ACL", docs[0].Content)
}

func TestNormalise_RaggedRows(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ragged.csv", []byte("a,b,c\n1\n1,2,3,4\n"))

	docs, err := New().Normalise(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a: 1", docs[0].Content)
	assert.Equal(t, "a: 1 | b: 2 | c: 3", docs[1].Content)
}

func TestNormalise_DuplicateColumns(t *testing.T) {
	path := writeFile(t, t.TempDir(), "dup.csv", []byte("x,y,x\n1,2,3\n"))

	docs, err := New().Normalise(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "x: 3 | y: 2", docs[0].Content)
}

func TestNormalise_HeaderOnlyAndEmpty(t *testing.T) {
	dir := t.TempDir()

	docs, err := New().Normalise(context.Background(), writeFile(t, dir, "header.csv", []byte("a,b\n")))
	require.NoError(t, err)
	assert.Empty(t, docs)

	docs, err = New().Normalise(context.Background(), writeFile(t, dir, "empty.csv", nil))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestNormalise_AllEncodingsFail(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.csv", []byte{'a', 0xff})

	_, err := New(WithEncodings(normalisers.UTF8)).Normalise(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEncoding)
}

func TestNormalise_MissingFile(t *testing.T) {
	_, err := New().Normalise(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestNormalise_Cancelled(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.csv", []byte("a\n1\n"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Normalise(ctx, path)
	assert.ErrorIs(t, err, context.Canceled)
}
