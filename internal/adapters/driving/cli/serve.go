package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpapi "github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/http"
	"github.com/DiengWinz/acl-chatbot-api/internal/logger"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Loads the knowledge base, then serves the chat API until interrupted.
Expired sessions are swept periodically in the background.

Endpoints:
  GET    /health
  POST   /api/v1/chat
  GET    /api/v1/session/{id}
  DELETE /api/v1/session/{id}
  GET    /api/v1/admin/stats
  POST   /api/v1/admin/cleanup
  GET    /api/v1/admin/knowledge-base

Every /api/v1 endpoint requires an X-API-Key header.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "address to bind")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (default server.port)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if settingsService == nil || chatService == nil || sessionService == nil {
		return errors.New("services not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("🚀 Démarrage de l'API ACL Chatbot...")
	if err := ensureCorpus(ctx); err != nil {
		return err
	}
	logger.Info("✅ Knowledge base chargée!")

	if !logger.IsVerbose() {
		gin.SetMode(gin.ReleaseMode)
	}

	server, err := httpapi.NewServer(&httpapi.Ports{
		Chat:     chatService,
		Sessions: sessionService,
		Search:   searchService,
	}, httpapi.Config{
		Version:     version,
		Environment: settings.Environment,
		APIKeys:     settings.Server.APIKeys,
	})
	if err != nil {
		return err
	}

	if sessionSweeper != nil {
		go func() {
			if err := sessionSweeper.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("session sweeper stopped: %v", err)
			}
		}()
		defer sessionSweeper.Stop() //nolint:errcheck
	}

	port := servePort
	if port <= 0 {
		port = settings.Server.Port
	}
	addr := fmt.Sprintf("%s:%d", serveHost, port)
	logger.Info("🌐 API disponible sur http://%s", addr)

	err = server.Run(ctx, addr)
	logger.Info("🛑 Arrêt de l'API...")
	return err
}
