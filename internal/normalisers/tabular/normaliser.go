// Package tabular provides the CSV normaliser. Every data row becomes one
// document rendered as "column: value | column: value".
package tabular

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
	"github.com/DiengWinz/acl-chatbot-api/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// ErrNoEncoding is returned when no configured encoding yields a parsable file.
var ErrNoEncoding = errors.New("no encoding could parse the file")

// Normaliser handles delimited text files.
type Normaliser struct {
	encodings []normalisers.Encoding
}

// Option configures the normaliser.
type Option func(*Normaliser)

// WithEncodings replaces the ordered list of encodings to try.
func WithEncodings(encodings ...normalisers.Encoding) Option {
	return func(n *Normaliser) {
		if len(encodings) > 0 {
			n.encodings = encodings
		}
	}
}

// New creates a new tabular normaliser.
func New(opts ...Option) *Normaliser {
	n := &Normaliser{encodings: normalisers.DefaultEncodings}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name returns the format name.
func (n *Normaliser) Name() string {
	return "tabular"
}

// Extensions returns the file extensions this normaliser handles.
func (n *Normaliser) Extensions() []string {
	return []string{".csv"}
}

// Normalise reads the file, decoding it with the first encoding under which
// it parses, and returns one document per row with at least one non-blank cell.
func (n *Normaliser) Normalise(ctx context.Context, path string) ([]domain.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var lastErr error
	for _, enc := range n.encodings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := enc.Decode(raw)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", enc.Name, err)
			continue
		}
		rows, err := parseRows(text)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", enc.Name, err)
			continue
		}
		docs := make([]domain.Document, 0, len(rows))
		for _, row := range rows {
			docs = append(docs, normalisers.NewDocument(path, row, nil))
		}
		return docs, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrNoEncoding, lastErr)
}

// parseRows parses CSV text with a header row and renders each data row.
// Rows with no non-blank cell are dropped.
func parseRows(text string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	columns, index := dedupeHeader(header)

	var rows []string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse row: %w", err)
		}
		if row := renderRow(columns, index, record); row != "" {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// dedupeHeader returns the distinct column names in first-seen order and,
// for each, the position of its last occurrence. A repeated column keeps
// its first position and takes the value of its last occurrence.
func dedupeHeader(header []string) ([]string, map[string]int) {
	index := make(map[string]int, len(header))
	var columns []string
	for i, name := range header {
		if _, seen := index[name]; !seen {
			columns = append(columns, name)
		}
		index[name] = i
	}
	return columns, index
}

func renderRow(columns []string, index map[string]int, record []string) string {
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		i := index[col]
		if i >= len(record) {
			continue
		}
		value := record[i]
		if strings.TrimSpace(value) == "" {
			continue
		}
		parts = append(parts, col+": "+value)
	}
	return strings.Join(parts, " | ")
}
