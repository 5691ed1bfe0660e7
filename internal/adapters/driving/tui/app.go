package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui/components/input"
	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui/components/sources"
	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui/components/status"
	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui/keymap"
	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui/messages"
	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui/styles"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

// header, input box and status bar
const chromeHeight = 5

// Entry is one line of the transcript.
type Entry struct {
	Role domain.Role
	Text string
}

// App is the chat TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	opts  Options
	ctx   context.Context

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.ChatInput
	statusbar *status.Bar
	footer    *sources.Footer
	viewport  viewport.Model

	transcript []Entry
	sessionID  string

	// pending is true while a reply is outstanding; new questions are
	// refused until it arrives.
	pending bool
	err     error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a chat TUI with the given ports.
func NewApp(ports *Ports, opts Options) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:     ports,
		opts:      opts,
		ctx:       context.Background(),
		styles:    s,
		keymap:    km,
		input:     input.NewChatInput(s),
		statusbar: status.NewBar(s, km),
		footer:    sources.NewFooter(s),
		viewport:  viewport.New(80, 20),
		sessionID: opts.SessionID,
	}, nil
}

// WithContext sets the context chat turns run under.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.input.Init(),
		tea.SetWindowTitle("ACL Chatbot"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.MessageSubmitted:
		return a, a.submit(msg.Text)

	case messages.ReplyReceived:
		a.handleReply(msg)
		return a, nil
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	var cmd tea.Cmd

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keymap.Send):
		text := a.input.Value()
		a.input.Reset()
		return a, a.submit(text)

	case keymap.Matches(keyStr, a.keymap.ToggleSources):
		a.footer.Toggle()
		a.layout()
		return a, nil

	case keymap.Matches(keyStr, a.keymap.ScrollUp), keymap.Matches(keyStr, a.keymap.ScrollDown):
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit records the question and returns the command fetching the reply.
// Blank questions and questions sent while a reply is pending are ignored.
func (a *App) submit(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" || a.pending {
		return nil
	}

	a.pending = true
	a.err = nil
	a.transcript = append(a.transcript, Entry{Role: domain.RoleUser, Text: text})
	a.statusbar.SetState(status.StateThinking)
	a.refresh()

	req := domain.ChatRequest{
		Message:   text,
		SessionID: a.sessionID,
		Language:  a.opts.Language,
		Filter:    a.opts.Filter,
	}
	ctx := a.ctx
	chat := a.ports.Chat
	return func() tea.Msg {
		resp, err := chat.Chat(ctx, req)
		return messages.ReplyReceived{Response: resp, Err: err}
	}
}

func (a *App) handleReply(msg messages.ReplyReceived) {
	a.pending = false

	if msg.Err != nil {
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(msg.Err.Error())
		a.refresh()
		return
	}

	resp := msg.Response
	a.sessionID = resp.SessionID
	a.transcript = append(a.transcript, Entry{Role: domain.RoleAssistant, Text: resp.Response})
	a.footer.SetSources(resp.Sources)
	a.statusbar.Clear()
	a.statusbar.SetTurn(resp.SessionID, resp.Model, resp.TokensUsed)
	a.layout()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Chargement..."
	}

	parts := []string{
		a.styles.Title.Render("AfricTivistes CitizenLab - Assistant"),
		a.viewport.View(),
	}
	if footer := a.footer.View(); footer != "" {
		parts = append(parts, footer)
	}
	parts = append(parts, a.input.View(), a.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderTranscript renders every entry, wrapped to the viewport width.
func (a *App) renderTranscript() string {
	if len(a.transcript) == 0 {
		return a.styles.Muted.Render("Posez une question sur AfricTivistes et CitizenLab.")
	}

	body := a.styles.Normal.Width(max(a.viewport.Width-2, 10))
	blocks := make([]string, 0, len(a.transcript)+1)
	for _, e := range a.transcript {
		label := a.styles.AssistantLabel.Render("ACL:")
		if e.Role == domain.RoleUser {
			label = a.styles.UserLabel.Render("Vous:")
		}
		blocks = append(blocks, label+"\n"+body.Render(e.Text))
	}
	if a.pending {
		blocks = append(blocks, a.styles.Muted.Render("..."))
	}
	return strings.Join(blocks, "\n\n")
}

// layout resizes the viewport around the footer and re-renders.
func (a *App) layout() {
	h := a.height - chromeHeight - a.footer.Height()
	if h < 3 {
		h = 3
	}
	a.viewport.Width = a.width
	a.viewport.Height = h
	a.refresh()
}

func (a *App) refresh() {
	a.viewport.SetContent(a.renderTranscript())
	a.viewport.GotoBottom()
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width)
	a.statusbar.SetWidth(width)
	a.footer.SetWidth(width)
	a.layout()
}

// Transcript returns the conversation so far.
func (a *App) Transcript() []Entry {
	return a.transcript
}

// SessionID returns the current session, empty before the first reply
// unless one was given in Options.
func (a *App) SessionID() string {
	return a.sessionID
}

// Pending reports whether a reply is outstanding.
func (a *App) Pending() bool {
	return a.pending
}

// Err returns the last chat error.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// Run starts the TUI on the alternate screen.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}
