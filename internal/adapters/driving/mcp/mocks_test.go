package mcp

import (
	"context"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results     []domain.SearchResult
	stats       domain.CorpusStats
	initialized bool
	err         error
	lastQuery   string
	lastOpts    domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	return m.results, m.err
}

func (m *mockSearchService) FormatContext(results []domain.SearchResult) string {
	if len(results) == 0 {
		return "none"
	}
	return "formatted"
}

func (m *mockSearchService) Stats() domain.CorpusStats {
	return m.stats
}

func (m *mockSearchService) Initialized() bool {
	return m.initialized
}

// mockChatService is a mock implementation of driving.ChatService.
type mockChatService struct {
	snapshot *domain.SessionSnapshot
	err      error
}

func (m *mockChatService) Chat(_ context.Context, _ domain.ChatRequest) (*domain.ChatResponse, error) {
	return nil, m.err
}

func (m *mockChatService) Snapshot(_ string) (*domain.SessionSnapshot, error) {
	return m.snapshot, m.err
}

func (m *mockChatService) AdminStats() domain.AdminStats {
	return domain.AdminStats{}
}

func (m *mockChatService) ModelName() string {
	return "mock"
}
