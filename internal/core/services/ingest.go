package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driving"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService builds the corpus from a knowledge base directory.
type IngestService struct {
	registry driven.NormaliserRegistry
	pipeline driven.PostProcessorPipeline
	corpus   driven.CorpusStore
}

// NewIngestService creates a new ingestion service.
func NewIngestService(
	registry driven.NormaliserRegistry,
	pipeline driven.PostProcessorPipeline,
	corpus driven.CorpusStore,
) *IngestService {
	return &IngestService{
		registry: registry,
		pipeline: pipeline,
		corpus:   corpus,
	}
}

// Initialize walks root in lexical order and appends the chunks of every
// supported file to the corpus. Calling it twice appends duplicates.
func (s *IngestService) Initialize(ctx context.Context, root string) (*domain.IngestSummary, error) {
	logger.Section("Knowledge Base Ingestion")

	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	summary := &domain.IngestSummary{Root: abs}

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		logger.Warn("⚠️  Dossier knowledge_base non trouvé : %s", abs)
		summary.RootMissing = true
		s.corpus.MarkInitialized()
		return summary, nil
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// Unreadable directory entries are skipped, not fatal.
			logger.Debug("walk %s: %v", path, err)
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		normaliser, err := s.registry.Lookup(path)
		if err != nil {
			logger.Debug("skipping %s: %v", path, err)
			return nil
		}

		outcome := s.ingestFile(ctx, path, normaliser)
		if errors.Is(outcome.Err, context.Canceled) || errors.Is(outcome.Err, context.DeadlineExceeded) {
			return outcome.Err
		}
		summary.Files = append(summary.Files, outcome)
		summary.TotalChunks += outcome.Chunks
		return nil
	})
	if walkErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return summary, fmt.Errorf("ingest %s: %w", root, ctxErr)
		}
		logger.Warn("walk %s: %v", root, walkErr)
	}

	s.corpus.MarkInitialized()
	logger.Info("📊 Total : %d chunks depuis %d fichiers", s.corpus.Len(), s.corpus.Stats().FilesLoaded)
	return summary, nil
}

// ingestFile normalises one file and stores its chunks. Chunks are only
// appended once the whole file has been processed.
func (s *IngestService) ingestFile(ctx context.Context, path string, normaliser driven.Normaliser) domain.FileOutcome {
	outcome := domain.FileOutcome{
		Path:   path,
		Name:   filepath.Base(path),
		Folder: domain.FolderOf(path),
		Format: strings.TrimPrefix(domain.ExtensionOf(path), "."),
	}

	docs, err := normaliser.Normalise(ctx, path)
	if err != nil {
		outcome.Err = fmt.Errorf("%s: %w", normaliser.Name(), err)
		logger.Error("  ❌ Erreur %s: %v", outcome.Name, err)
		return outcome
	}

	var chunks []domain.Chunk
	for i := range docs {
		docChunks, err := s.pipeline.Process(ctx, &docs[i])
		if err != nil {
			outcome.Err = err
			logger.Error("  ❌ Erreur %s: %v", outcome.Name, err)
			return outcome
		}
		chunks = append(chunks, docChunks...)
	}

	s.corpus.Append(chunks...)
	outcome.Chunks = len(chunks)
	logger.Info("  ✅ %s → %d chunks", outcome.Name, outcome.Chunks)
	return outcome
}
