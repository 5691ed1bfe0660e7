package mcp

import (
	"context"
	"sort"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RequiresSearch(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{"no ports", &Ports{}, ErrMissingSearchService},
		{"chat without search", &Ports{Chat: &mockChatService{}}, ErrMissingSearchService},
		{"search only", &Ports{Search: &mockSearchService{}}, nil},
		{"search and chat", &Ports{Search: &mockSearchService{}, Chat: &mockChatService{}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, err := NewServer(tt.ports)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, server)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, server)
			assert.NotNil(t, server.Handler())
		})
	}
}

// connect runs server over in-memory transports and returns a client session.
func connect(t *testing.T, server *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() }) //nolint:errcheck

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() }) //nolint:errcheck
	return session
}

func TestServer_ListsToolsAndResources(t *testing.T) {
	server, err := NewServer(&Ports{Search: &mockSearchService{}, Chat: &mockChatService{}})
	require.NoError(t, err)
	session := connect(t, server)
	ctx := context.Background()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	names := make([]string, 0, len(tools.Tools))
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"knowledge_base_stats", "search_knowledge_base"}, names)

	resources, err := session.ListResources(ctx, nil)
	require.NoError(t, err)
	require.Len(t, resources.Resources, 1)
	assert.Equal(t, "acl://knowledge-base", resources.Resources[0].URI)

	templates, err := session.ListResourceTemplates(ctx, nil)
	require.NoError(t, err)
	require.Len(t, templates.ResourceTemplates, 1)
	assert.Equal(t, "acl://sessions/{sessionId}", templates.ResourceTemplates[0].URITemplate)
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingSearchService)
	assert.NoError(t, (&Ports{Search: &mockSearchService{}}).Validate())
}
