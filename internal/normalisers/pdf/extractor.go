package pdf

import (
	"context"
	"fmt"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.PageExtractor = (*Extractor)(nil)

// Extractor reads page text with github.com/ledongthuc/pdf.
type Extractor struct{}

// NewExtractor creates a page extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractPages returns the plain text of every page, in order.
// Pages that cannot be decoded yield an empty string.
func (e *Extractor) ExtractPages(ctx context.Context, path string) (pages []string, err error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	// The reader panics on some malformed streams.
	defer func() {
		if rec := recover(); rec != nil {
			pages, err = nil, fmt.Errorf("read pdf: %v", rec)
		}
	}()

	n := r.NumPage()
	pages = make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
