// Package cli implements the acl command line: the HTTP server, one-shot
// search, interactive chat, stats and the MCP server.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driving"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// skipBootstrap marks commands that run without services.
const skipBootstrap = "skip-bootstrap"

// Persistent flags.
var (
	configPath string
	kbOverride string
	verbose    bool
)

// Services wired by the bootstrapper.
var (
	settingsService  driving.SettingsService
	ingestService    driving.IngestService
	searchService    driving.SearchService
	sessionService   driving.SessionService
	chatService      driving.ChatService
	sessionSweeper   Sweeper
	knowledgeBaseDir string
	llmCheck         func(ctx context.Context) error
	startupWarnings  []string
	closeServices    func()
)

// Sweeper periodically removes expired sessions.
type Sweeper interface {
	Start(ctx context.Context) error
	Stop() error
}

// Services is everything the commands need, assembled by the entrypoint.
type Services struct {
	Settings driving.SettingsService
	Ingest   driving.IngestService
	Search   driving.SearchService
	Sessions driving.SessionService
	Chat     driving.ChatService
	Sweeper  Sweeper

	// KnowledgeBaseDir is the directory ingested on first use.
	KnowledgeBaseDir string

	// LLMCheck pings the generation provider. Optional.
	LLMCheck func(ctx context.Context) error

	// Warnings are reported once at startup.
	Warnings []string

	// Close releases resources. Optional.
	Close func()
}

// Options are the persistent flag values handed to the bootstrapper.
type Options struct {
	ConfigPath       string
	KnowledgeBaseDir string
	Verbose          bool
}

// Bootstrapper builds services once flags are parsed.
type Bootstrapper func(opts Options) (*Services, error)

var bootstrap Bootstrapper

var rootCmd = &cobra.Command{
	Use:   "acl",
	Short: "AfricTivistes CitizenLab chatbot",
	Long: `acl answers questions about AfricTivistes CitizenLab from a local
knowledge base of CSV, text and PDF files, using lexical retrieval and an
OpenAI-compatible chat completion API (Groq by default).`,
	SilenceUsage:      true,
	PersistentPreRunE: runBootstrap,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default config.toml)")
	rootCmd.PersistentFlags().StringVar(&kbOverride, "kb", "", "knowledge base directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the reported version.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that builds services.
func SetBootstrap(b Bootstrapper) {
	bootstrap = b
}

// SetServices installs services directly.
func SetServices(s *Services) {
	settingsService = s.Settings
	ingestService = s.Ingest
	searchService = s.Search
	sessionService = s.Sessions
	chatService = s.Chat
	sessionSweeper = s.Sweeper
	knowledgeBaseDir = s.KnowledgeBaseDir
	llmCheck = s.LLMCheck
	startupWarnings = s.Warnings
	closeServices = s.Close
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer func() {
		if closeServices != nil {
			closeServices()
		}
		logger.Sync() //nolint:errcheck
	}()
	return rootCmd.ExecuteContext(ctx)
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[skipBootstrap] == "true" || bootstrap == nil {
		return nil
	}

	s, err := bootstrap(Options{
		ConfigPath:       configPath,
		KnowledgeBaseDir: kbOverride,
		Verbose:          verbose,
	})
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	SetServices(s)

	for _, w := range startupWarnings {
		logger.Warn("%s", w)
	}
	return nil
}

// ensureCorpus ingests the knowledge base unless it is already loaded.
func ensureCorpus(ctx context.Context) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if searchService.Initialized() {
		return nil
	}
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	dir := knowledgeBaseDir
	if dir == "" {
		dir = domain.DefaultKnowledgeBaseDir
	}
	logger.Info("📚 Chargement de la knowledge base...")
	if _, err := ingestService.Initialize(ctx, dir); err != nil {
		return fmt.Errorf("loading knowledge base: %w", err)
	}
	return nil
}
