package cli

import (
	"context"
	"errors"

	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driven/storage/memory"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/services"
)

// fakeIngestService loads a fixed chunk set into the corpus.
type fakeIngestService struct {
	corpus *memory.CorpusStore
	chunks []domain.Chunk
	roots  []string
	err    error
}

func (f *fakeIngestService) Initialize(_ context.Context, root string) (*domain.IngestSummary, error) {
	f.roots = append(f.roots, root)
	if f.err != nil {
		return nil, f.err
	}
	f.corpus.Append(f.chunks...)
	f.corpus.MarkInitialized()
	return &domain.IngestSummary{Root: root, TotalChunks: len(f.chunks)}, nil
}

// mockSearchServiceError fails every search.
type mockSearchServiceError struct{}

func (m *mockSearchServiceError) Search(_ context.Context, _ string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
	return nil, errors.New("index unavailable")
}

func (m *mockSearchServiceError) FormatContext(_ []domain.SearchResult) string { return "" }

func (m *mockSearchServiceError) Stats() domain.CorpusStats { return domain.CorpusStats{} }

func (m *mockSearchServiceError) Initialized() bool { return true }

type testServices struct {
	corpus   *memory.CorpusStore
	ingest   *fakeIngestService
	config   *memory.ConfigStore
	sessions *services.SessionService
}

func testChunks() []domain.Chunk {
	return []domain.Chunk{
		{
			Content:    "AfricTivistes accompagne la participation citoyenne au Sénégal",
			SourceFile: "senegal.txt",
			Metadata:   map[string]any{domain.MetaFolder: "Senegal"},
		},
		{
			Content:    "Rapport annuel sur la participation des jeunes",
			SourceFile: "rapport.pdf",
			Position:   0,
			Metadata:   map[string]any{domain.MetaFolder: "knowledge_base", domain.MetaPage: 2},
		},
	}
}

// setupTestServices installs real in-memory services whose corpus is loaded
// on first use, and returns a restore function.
func setupTestServices() (*testServices, func()) {
	corpus := memory.NewCorpusStore()
	ingest := &fakeIngestService{corpus: corpus, chunks: testChunks()}
	config := memory.NewConfigStore()
	sessions := services.NewSessionService(memory.NewSessionStore(),
		services.WithIDGenerator(func() string { return "0123456789abcdef" }))
	search := services.NewSearchService(corpus)

	SetServices(&Services{
		Settings:         services.NewSettingsService(config),
		Ingest:           ingest,
		Search:           search,
		Sessions:         sessions,
		Chat:             services.NewChatService(sessions, search, services.NewResponder(nil)),
		KnowledgeBaseDir: "kb",
	})

	ts := &testServices{corpus: corpus, ingest: ingest, config: config, sessions: sessions}
	return ts, func() {
		SetServices(&Services{})
		resetFlags()
	}
}

// resetFlags restores flag-bound globals between rootCmd executions.
func resetFlags() {
	searchLimit = 0
	searchFilter = ""
	searchJSON = false
	statsJSON = false
	chatSession = ""
	chatLanguage = string(domain.DefaultLanguage)
	chatFilter = ""
	chatPlain = false
	configPath = ""
	kbOverride = ""
	verbose = false
	rootCmd.SetArgs(nil)
	rootCmd.SetIn(nil)
}
