package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

var (
	chatSession  string
	chatLanguage string
	chatFilter   string
	chatPlain    bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the assistant",
	Long: `Opens an interactive conversation with the assistant.

On a terminal a full-screen chat is shown. When input is piped, or with
--plain, each input line is one question and replies are printed as they
arrive.

Controls (full-screen):
  enter    - Send question
  ctrl+s   - Show/hide sources
  pgup/dn  - Scroll transcript
  esc      - Quit`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatSession, "session", "", "resume a session id")
	chatCmd.Flags().StringVar(&chatLanguage, "lang", string(domain.DefaultLanguage), "reply language (fr or en)")
	chatCmd.Flags().StringVar(&chatFilter, "filter", "", "restrict retrieval to a country folder or file name")
	chatCmd.Flags().BoolVar(&chatPlain, "plain", false, "line mode even on a terminal")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	lang := domain.Language(chatLanguage)
	if !lang.IsValid() {
		return fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, chatLanguage)
	}

	if err := ensureCorpus(cmd.Context()); err != nil {
		return err
	}

	opts := tui.Options{SessionID: chatSession, Language: lang, Filter: chatFilter}

	if !chatPlain && isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout()) {
		app, err := tui.NewApp(&tui.Ports{Chat: chatService}, opts)
		if err != nil {
			return fmt.Errorf("failed to create TUI: %w", err)
		}
		if err := app.WithContext(cmd.Context()).Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	}

	return runLineChat(cmd, cmd.InOrStdin(), opts)
}

// runLineChat answers one question per input line until EOF.
func runLineChat(cmd *cobra.Command, in io.Reader, opts tui.Options) error {
	sessionID := opts.SessionID
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		resp, err := chatService.Chat(cmd.Context(), domain.ChatRequest{
			Message:   line,
			SessionID: sessionID,
			Language:  opts.Language,
			Filter:    opts.Filter,
		})
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				cmd.PrintErrf("Error: %v\n", err)
				continue
			}
			return fmt.Errorf("chat failed: %w", err)
		}

		if sessionID == "" {
			cmd.Printf("Session: %s\n", resp.SessionID)
		}
		sessionID = resp.SessionID

		cmd.Printf("ACL: %s\n", resp.Response)
		if len(resp.Sources) > 0 {
			names := make([]string, len(resp.Sources))
			for i, src := range resp.Sources {
				names[i] = fmt.Sprintf("%s (%.3f)", src.SourceFile, src.RelevanceScore)
			}
			cmd.Printf("  Sources: %s\n", strings.Join(names, ", "))
		}
		cmd.Println()
	}

	return scanner.Err()
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
