package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "show")
	assert.Contains(t, names, "llm")
}

func TestSettingsCmd_Show(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.config.Set("llm.api_key", "gsk_1234567890abcdef")
	ts.config.Set("rag.top_k_results", 3)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Top K: 3")
	assert.Contains(t, out, "API Key: gsk_...cdef")
	assert.NotContains(t, out, "gsk_1234567890abcdef")
	assert.Contains(t, out, "Status: configured")
	assert.Contains(t, out, "Model: llama-3.3-70b-versatile")
	assert.Contains(t, out, "API keys: acl-...2024")
}

func TestSettingsCmd_ShowWithoutKey(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "API Key: (not set)")
	assert.Contains(t, buf.String(), "Status: not configured")
}

func TestSettingsCmd_LLM(t *testing.T) {
	tests := []struct {
		name    string
		check   func(context.Context) error
		wantErr string
		wantOut string
	}{
		{"reachable", func(context.Context) error { return nil }, "", "LLM provider reachable."},
		{"failure", func(context.Context) error { return errors.New("401") }, "LLM check failed: 401", ""},
		{"not configured", nil, "LLM check not configured", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cleanup := setupTestServices()
			defer cleanup()
			llmCheck = tt.check

			buf := new(bytes.Buffer)
			rootCmd.SetOut(buf)
			rootCmd.SetErr(buf)
			rootCmd.SetArgs([]string{"settings", "llm"})

			err := rootCmd.Execute()

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.wantOut)
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "****"},
		{"short", "****"},
		{"12345678", "****"},
		{"123456789", "1234...6789"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maskAPIKey(tt.key), tt.key)
	}
}
