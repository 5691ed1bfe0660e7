package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeCmd_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"host", "", "0.0.0.0"},
		{"port", "p", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := serveCmd.Flags().Lookup(tt.name)
			if assert.NotNil(t, flag) {
				assert.Equal(t, tt.shorthand, flag.Shorthand)
				assert.Equal(t, tt.defValue, flag.DefValue)
			}
		})
	}
}

func TestServeCmd_ServicesNotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	chatService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"serve"})

	err := rootCmd.Execute()

	assert.EqualError(t, err, "services not configured")
}

func TestMCPCmd_Structure(t *testing.T) {
	names := make([]string, 0)
	for _, c := range mcpCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")

	flag := mcpServeCmd.Flags().Lookup("port")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "p", flag.Shorthand)
		assert.Equal(t, "0", flag.DefValue)
	}
}

func TestMCPCmd_ServiceNotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	searchService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"mcp", "serve"})

	err := rootCmd.Execute()

	assert.EqualError(t, err, "search service not configured")
}
