// Package styles holds the chat screen's palette and lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette. Primary marks the assistant and Secondary the
// user, so the two speakers never share a colour.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	Bar        lipgloss.Color
}

// DefaultTheme is the AfricTivistes orange on a dark terminal.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    "#F97316",
		Secondary:  "#06B6D4",
		Foreground: "#CDD6F4",
		Muted:      "#6C7086",
		Success:    "#A6E3A1",
		Error:      "#F38BA8",
		Border:     "#45475A",
		Bar:        "#181825",
	}
}

// Styles are the rendered styles of one theme.
type Styles struct {
	theme *Theme

	Title          lipgloss.Style
	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	Normal         lipgloss.Style
	Muted          lipgloss.Style
	Error          lipgloss.Style
	Success        lipgloss.Style

	// Source renders one retrieved file in the sources footer.
	Source lipgloss.Style

	// InputField frames the question box.
	InputField lipgloss.Style

	StatusBar lipgloss.Style
}

// NewStyles derives styles from theme; nil means DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	return &Styles{
		theme:          theme,
		Title:          fg(theme.Primary).Bold(true),
		UserLabel:      fg(theme.Secondary).Bold(true),
		AssistantLabel: fg(theme.Primary).Bold(true),
		Normal:         fg(theme.Foreground),
		Muted:          fg(theme.Muted),
		Error:          fg(theme.Error),
		Success:        fg(theme.Success),
		Source:         fg(theme.Muted).Italic(true),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		StatusBar: fg(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),
	}
}

// DefaultStyles returns NewStyles(DefaultTheme()).
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
