package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/mcp"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the knowledge base to AI assistants",
	Long:  `Model Context Protocol integration: lets assistants such as Claude Desktop search the ACL knowledge base.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the MCP tools",
	Long: `Loads the knowledge base and serves it over MCP.

Tools:
  search_knowledge_base  keyword search with optional country filter
  knowledge_base_stats   chunk counts per file

Resources:
  acl://knowledge-base          corpus stats
  acl://sessions/{sessionId}    chat session snapshot

Stdio is used unless --port is given, in which case the streamable HTTP
transport listens on that port.

Examples:
  acl mcp serve --kb ./knowledge_base
  acl mcp serve --port 8081`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	if err := ensureCorpus(cmd.Context()); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search: searchService,
		Chat:   chatService,
	})
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		logger.Info("🔌 MCP disponible sur http://localhost%s", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
