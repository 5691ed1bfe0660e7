package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{"quit", km.Quit, []string{"ctrl+c", "esc"}},
		{"send", km.Send, []string{"enter"}},
		{"scroll up", km.ScrollUp, []string{"pgup"}},
		{"scroll down", km.ScrollDown, []string{"pgdown"}},
		{"toggle sources", km.ToggleSources, []string{"ctrl+s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := DefaultKeyMap()

	help := km.ShortHelp()

	require.Len(t, help, 3)
	assert.Equal(t, "send", help[0].Help().Desc)
	assert.Equal(t, "quit", help[2].Help().Desc)
}

func TestKeyMap_FullHelp(t *testing.T) {
	km := DefaultKeyMap()

	groups := km.FullHelp()

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, 5, total)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("enter", km.Send))
	assert.True(t, Matches("esc", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.False(t, Matches("q", km.Quit))
	assert.False(t, Matches("", km.Send))
}
