package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.NotEmpty(t, string(theme.Primary))
	assert.NotEmpty(t, string(theme.Secondary))
	assert.NotEmpty(t, string(theme.Foreground))
	assert.NotEmpty(t, string(theme.Muted))
	assert.NotEmpty(t, string(theme.Success))
	assert.NotEmpty(t, string(theme.Error))
	assert.NotEmpty(t, string(theme.Border))
	assert.NotEmpty(t, string(theme.Bar))
}

func TestDefaultTheme_SpeakersAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	assert.NotEqual(t, theme.Primary, theme.Secondary)
	assert.NotEqual(t, theme.Success, theme.Error)
}

func TestNewStyles_WithTheme(t *testing.T) {
	theme := DefaultTheme()
	styles := NewStyles(theme)

	require.NotNil(t, styles)
	assert.Equal(t, theme, styles.Theme())
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil)

	require.NotNil(t, styles)
	assert.NotNil(t, styles.Theme())
}

func TestNewStyles_LabelsUseSpeakerColours(t *testing.T) {
	theme := &Theme{
		Primary:   lipgloss.Color("#111111"),
		Secondary: lipgloss.Color("#222222"),
	}
	styles := NewStyles(theme)

	assert.Equal(t, lipgloss.Color("#111111"), styles.AssistantLabel.GetForeground())
	assert.Equal(t, lipgloss.Color("#222222"), styles.UserLabel.GetForeground())
	assert.True(t, styles.UserLabel.GetBold())
}

func TestDefaultStyles_RendersText(t *testing.T) {
	styles := DefaultStyles()

	assert.Contains(t, styles.Normal.Render("Bonjour"), "Bonjour")
	assert.Contains(t, styles.Source.Render("guide.pdf"), "guide.pdf")
}
