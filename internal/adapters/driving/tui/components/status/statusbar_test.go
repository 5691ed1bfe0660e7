package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui/keymap"
	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, "", bar.SessionID())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestStatusBar_Init(t *testing.T) {
	assert.Nil(t, NewBar(nil, nil).Init())
}

func TestStatusBar_Update(t *testing.T) {
	bar := NewBar(nil, nil)

	updated, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, bar, updated)
	assert.Nil(t, cmd)
}

func TestStatusBar_View(t *testing.T) {
	tokens := 42

	tests := []struct {
		name  string
		setup func(*Bar)
		want  []string
	}{
		{
			name:  "ready without turn",
			setup: func(*Bar) {},
			want:  []string{"Prêt", "enter: send"},
		},
		{
			name:  "thinking",
			setup: func(b *Bar) { b.SetState(StateThinking) },
			want:  []string{"Réflexion..."},
		},
		{
			name: "error with message",
			setup: func(b *Bar) {
				b.SetState(StateError)
				b.SetMessage("timeout")
			},
			want: []string{"Erreur: timeout"},
		},
		{
			name:  "error without message",
			setup: func(b *Bar) { b.SetState(StateError) },
			want:  []string{"Erreur"},
		},
		{
			name:  "turn details",
			setup: func(b *Bar) { b.SetTurn("0123456789abcdef", "llama-3.3-70b-versatile", &tokens) },
			want:  []string{"session 01234567", "llama-3.3-70b-versatile", "42 tokens"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(160)
			tt.setup(bar)

			view := bar.View()
			for _, w := range tt.want {
				assert.Contains(t, view, w)
			}
		})
	}
}

func TestStatusBar_TurnWithoutTokens(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)
	bar.SetTurn("abc", "model", nil)

	view := bar.View()

	assert.Contains(t, view, "session abc")
	assert.NotContains(t, view, "tokens")
}

func TestStatusBar_SetWidth(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.SetWidth(120)

	assert.Equal(t, 120, bar.Width())
}

func TestStatusBar_Clear(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetState(StateError)
	bar.SetMessage("boom")
	bar.SetTurn("session-1", "m", nil)

	bar.Clear()

	assert.Equal(t, StateReady, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, "session-1", bar.SessionID())
}
