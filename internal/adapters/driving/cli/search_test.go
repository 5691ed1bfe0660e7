package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_Short(t *testing.T) {
	assert.Equal(t, "Search the knowledge base", searchCmd.Short)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search"})

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"limit", "n", "0"},
		{"filter", "", ""},
		{"json", "", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := searchCmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestSearchCmd_ExecutesWithQuery(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "participation citoyenne"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"kb"}, ts.ingest.roots)
	out := buf.String()
	assert.Contains(t, out, "Results:")
	assert.Contains(t, out, "[1] senegal.txt (1.000)")
	assert.Contains(t, out, "Folder: Senegal")
	assert.Contains(t, out, "rapport.pdf p.2")
}

func TestSearchCmd_FilterAndLimit(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "-n", "5", "--filter", "senegal", "participation"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "senegal.txt")
	assert.NotContains(t, buf.String(), "rapport.pdf")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"search", "--json", "participation citoyenne"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	var results []searchResultJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "senegal.txt", results[0].SourceFile)
	assert.Equal(t, 1.0, results[0].Score)
	assert.Equal(t, 2, results[1].Page)
}

func TestSearchCmd_ServiceNotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	searchService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "test"})

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search service not configured")
}

func TestSearchCmd_ServiceError(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	searchService = &mockSearchServiceError{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"search", "test"})

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search failed: index unavailable")
}

func TestOutputSearchJSON_EmptyResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputSearchJSON(rootCmd, []domain.SearchResult{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "[]")
}

func TestOutputSearchTable_EmptyResults(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputSearchTable(rootCmd, []domain.SearchResult{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No results found")
}
