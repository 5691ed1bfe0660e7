// Package sources renders the passages backing the last reply.
package sources

import (
	"fmt"
	"strings"

	"github.com/DiengWinz/acl-chatbot-api/internal/adapters/driving/tui/styles"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

// Footer lists the sources of the most recent reply.
type Footer struct {
	sources []domain.Source
	styles  *styles.Styles
	visible bool
	width   int
}

// NewFooter creates a visible, empty footer.
func NewFooter(s *styles.Styles) *Footer {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Footer{
		styles:  s,
		visible: true,
		width:   80,
	}
}

// SetSources replaces the listed sources.
func (f *Footer) SetSources(sources []domain.Source) {
	f.sources = sources
}

// Sources returns the listed sources.
func (f *Footer) Sources() []domain.Source {
	return f.sources
}

// Toggle shows or hides the footer.
func (f *Footer) Toggle() {
	f.visible = !f.visible
}

// Visible reports whether the footer is shown.
func (f *Footer) Visible() bool {
	return f.visible
}

// SetWidth sets the render width.
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// Height returns the number of lines View produces.
func (f *Footer) Height() int {
	if !f.visible || len(f.sources) == 0 {
		return 0
	}
	return len(f.sources) + 1
}

// View renders one line per source: file name and relevance.
func (f *Footer) View() string {
	if f.Height() == 0 {
		return ""
	}

	lines := make([]string, 0, len(f.sources)+1)
	lines = append(lines, f.styles.Muted.Render("Sources:"))
	for i, src := range f.sources {
		line := fmt.Sprintf("  [%d] %s (%.3f)", i+1, src.SourceFile, src.RelevanceScore)
		if f.width > 0 && len([]rune(line)) > f.width {
			line = string([]rune(line)[:f.width])
		}
		lines = append(lines, f.styles.Source.Render(line))
	}
	return strings.Join(lines, "\n")
}
