// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui/keymap"
	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui/styles"
)

// State represents the current conversation state for display.
type State string

const (
	StateReady    State = "ready"
	StateThinking State = "thinking"
	StateError    State = "error"
)

// Bar displays conversation status and keybinding hints.
type Bar struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	state     State
	message   string
	sessionID string
	model     string
	tokens    *int
	width     int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	// two cells of horizontal style padding
	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateThinking:
		return s.styles.Muted.Render("Réflexion...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Erreur: %s", s.message))
		}
		return s.styles.Error.Render("Erreur")
	case StateReady:
	}

	parts := make([]string, 0, 3)
	if s.sessionID != "" {
		parts = append(parts, "session "+shortID(s.sessionID))
	}
	if s.model != "" {
		parts = append(parts, s.model)
	}
	if s.tokens != nil {
		parts = append(parts, fmt.Sprintf("%d tokens", *s.tokens))
	}
	if len(parts) == 0 {
		return s.styles.Muted.Render("Prêt")
	}
	return s.styles.Normal.Render(strings.Join(parts, " | "))
}

func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the error message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetTurn records the session, model and token usage of the last reply.
func (s *Bar) SetTurn(sessionID, model string, tokens *int) {
	s.sessionID = sessionID
	s.model = model
	s.tokens = tokens
}

// SessionID returns the session shown in the bar.
func (s *Bar) SessionID() string {
	return s.sessionID
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the state and message, keeping the turn details.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
