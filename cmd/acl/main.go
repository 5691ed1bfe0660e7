// Command acl runs the AfricTivistes CitizenLab chatbot: the HTTP API, the
// MCP server and the terminal chat, all over one in-memory knowledge base.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driven/ai"
	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driven/config/file"
	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driven/storage/memory"
	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/cli"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/services"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
	"github.com/DiengWinz/acl-chatbot-api/internal/normalisers/pdf"
	"github.com/DiengWinz/acl-chatbot-api/internal/normalisers/plaintext"
	"github.com/DiengWinz/acl-chatbot-api/internal/normalisers/tabular"
	"github.com/DiengWinz/acl-chatbot-api/internal/postprocessors"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the driven adapters into the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("resolving settings: %w", err)
	}
	if opts.KnowledgeBaseDir != "" {
		settings.RAG.KnowledgeBaseDir = opts.KnowledgeBaseDir
	}
	logger.Debug("Environment: %s, knowledge base: %s", settings.Environment, settings.RAG.KnowledgeBaseDir)

	corpus := memory.NewCorpusStore()
	registry := services.NewNormaliserRegistry(
		tabular.New(),
		plaintext.New(),
		pdf.NewDefault(),
	)

	processors := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(processors)
	pipeline, err := postprocessors.BuildPipeline(processors, settingsService.GetPipelineConfig(settings.RAG))
	if err != nil {
		return nil, fmt.Errorf("building pipeline: %w", err)
	}

	ingestService := services.NewIngestService(registry, pipeline, corpus)
	searchService := services.NewSearchService(corpus, services.WithTopK(settings.RAG.TopK))
	sessionService := services.NewSessionService(memory.NewSessionStore(),
		services.WithMaxHistory(settings.Session.MaxHistoryLength),
		services.WithTTL(settings.Session.TTL),
	)

	llm := ai.Init(&settings.LLM, false)
	responderOpts := []services.ResponderOption{
		services.WithChatOptions(driven.ChatOptions{
			MaxTokens:   settings.LLM.MaxTokens,
			Temperature: settings.LLM.Temperature,
		}),
	}
	warnings := append([]string(nil), llm.Warnings...)
	if dir := settingsService.PromptDir(); dir != "" {
		prompts, err := file.NewPromptStore(dir, services.DefaultSystemPrompts())
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("prompt directory ignored: %v", err))
		} else {
			responderOpts = append(responderOpts, services.WithPromptStore(prompts))
		}
	}
	responder := services.NewResponder(llm.LLMService, responderOpts...)

	chatService := services.NewChatService(sessionService, searchService, responder,
		services.WithModelName(settings.LLM.Model))

	llmSettings := settings.LLM
	return &cli.Services{
		Settings:         settingsService,
		Ingest:           ingestService,
		Search:           searchService,
		Sessions:         sessionService,
		Chat:             chatService,
		Sweeper:          services.NewSweeper(sessionService, settings.Session.SweepInterval),
		KnowledgeBaseDir: settings.RAG.KnowledgeBaseDir,
		LLMCheck: func(context.Context) error {
			return ai.ValidateLLMConfig(&llmSettings)
		},
		Warnings: warnings,
		Close:    llm.Close,
	}, nil
}
