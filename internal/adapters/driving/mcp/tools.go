package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/services"
)

// SearchInput is the input schema for the search_knowledge_base tool.
type SearchInput struct {
	Query  string `json:"query" jsonschema:"the question or keywords to look up"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of passages to return (default 5)"`
	Filter string `json:"filter,omitempty" jsonschema:"restrict to a country folder or file name, e.g. senegal"`
}

// SearchOutput is the output schema for the search_knowledge_base tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
	Context string               `json:"context"`
}

// SearchResultOutput represents a single retrieved passage.
type SearchResultOutput struct {
	SourceFile string  `json:"source_file"`
	Folder     string  `json:"folder,omitempty"`
	Page       int     `json:"page,omitempty"`
	Score      float64 `json:"score"`
	Content    string  `json:"content"`
}

// StatsInput is the empty input of the knowledge_base_stats tool.
type StatsInput struct{}

// StatsOutput is the output schema for the knowledge_base_stats tool.
type StatsOutput struct {
	Loaded      bool           `json:"loaded"`
	TotalChunks int            `json:"total_chunks"`
	FilesLoaded int            `json:"files_loaded"`
	FileDetails map[string]int `json:"file_details"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_knowledge_base",
		Description: "Search the AfricTivistes CitizenLab knowledge base by keyword overlap",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "knowledge_base_stats",
		Description: "Report how many chunks and files the knowledge base holds",
	}, s.handleStats)
}

// handleSearch handles the search_knowledge_base tool invocation.
// A non-positive limit falls back to the service's top-K.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{Limit: input.Limit, Filter: input.Filter}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
		Context: s.ports.Search.FormatContext(results),
	}

	for i := range results {
		chunk := results[i].Chunk
		page, _ := chunk.Page()
		output.Results[i] = SearchResultOutput{
			SourceFile: chunk.SourceFile,
			Folder:     chunk.Folder(),
			Page:       page,
			Score:      services.RoundScore(results[i].Score),
			Content:    chunk.Content,
		}
	}

	return nil, output, nil
}

// handleStats handles the knowledge_base_stats tool invocation.
func (s *Server) handleStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ StatsInput,
) (*mcp.CallToolResult, StatsOutput, error) {
	stats := s.ports.Search.Stats()
	return nil, StatsOutput{
		Loaded:      s.ports.Search.Initialized(),
		TotalChunks: stats.TotalChunks,
		FilesLoaded: stats.FilesLoaded,
		FileDetails: stats.FileDetails,
	}, nil
}
