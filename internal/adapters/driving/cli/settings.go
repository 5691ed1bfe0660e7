package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show resolved settings",
	Long: `Shows the settings in effect after merging config.toml, .env and the
environment, with defaults applied.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show resolved settings",
	RunE:  runSettingsShow,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Check the LLM provider connection",
	Long:  `Pings the configured OpenAI-compatible provider with the configured API key.`,
	RunE:  runSettingsLLM,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Printf("Environment: %s\n", settings.Environment)
	cmd.Println()

	cmd.Println("[Knowledge Base]")
	cmd.Printf("  Directory: %s\n", settings.RAG.KnowledgeBaseDir)
	cmd.Printf("  Chunk size: %d characters\n", settings.RAG.ChunkSize)
	cmd.Printf("  Chunk overlap: %d words\n", settings.RAG.ChunkOverlap)
	cmd.Printf("  Top K: %d\n", settings.RAG.TopK)
	cmd.Println()

	cmd.Println("[Sessions]")
	cmd.Printf("  Max history: %d messages\n", settings.Session.MaxHistoryLength)
	cmd.Printf("  TTL: %s\n", settings.Session.TTL)
	cmd.Printf("  Sweep interval: %s\n", settings.Session.SweepInterval)
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	if settings.LLM.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	cmd.Printf("  Max tokens: %d\n", settings.LLM.MaxTokens)
	cmd.Printf("  Temperature: %.2f\n", settings.LLM.Temperature)
	cmd.Printf("  Requests per minute: %d\n", settings.LLM.RequestsPerMinute)
	status := "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Port: %d\n", settings.Server.Port)
	masked := make([]string, len(settings.Server.APIKeys))
	for i, k := range settings.Server.APIKeys {
		masked[i] = maskAPIKey(k)
	}
	cmd.Printf("  API keys: %s\n", strings.Join(masked, ", "))

	return nil
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	if llmCheck == nil {
		return errors.New("LLM check not configured")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	if err := llmCheck(ctx); err != nil {
		return fmt.Errorf("LLM check failed: %w", err)
	}
	cmd.Println("LLM provider reachable.")
	return nil
}

// maskAPIKey keeps the first and last four characters of long keys.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
