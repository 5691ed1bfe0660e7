// Package chunker provides the word-window text chunking processor.
package chunker

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/ports/driven"
)

// DefaultChunkSize is the default target number of characters per chunk.
const DefaultChunkSize = 400

// DefaultChunkOverlap is the default number of words repeated at the start
// of the next chunk.
const DefaultChunkOverlap = 50

var _ driven.PostProcessor = (*Processor)(nil)

// Processor splits document content into overlapping word windows.
// It implements the PostProcessor interface.
type Processor struct {
	chunkSize int
	overlap   int
}

// Option configures the chunker processor.
type Option func(*Processor)

// WithChunkSize sets the target chunk size in characters.
func WithChunkSize(size int) Option {
	return func(p *Processor) {
		if size > 0 {
			p.chunkSize = size
		}
	}
}

// WithOverlap sets the number of words carried over between chunks.
func WithOverlap(overlap int) Option {
	return func(p *Processor) {
		if overlap >= 0 {
			p.overlap = overlap
		}
	}
}

// New creates a new chunker processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "chunker"
}

// ChunkSize returns the configured target chunk size.
func (p *Processor) ChunkSize() int {
	return p.chunkSize
}

// Overlap returns the configured overlap in words.
func (p *Processor) Overlap() int {
	return p.overlap
}

// Process splits the document content into chunks.
// Input chunks are ignored; this processor creates new chunks from document content.
// Every chunk inherits the document's source file and a copy of its metadata.
func (p *Processor) Process(_ context.Context, doc *domain.Document, _ []domain.Chunk) ([]domain.Chunk, error) {
	pieces := Split(doc.Content, p.chunkSize, p.overlap)
	if len(pieces) == 0 {
		return nil, nil
	}

	chunks := make([]domain.Chunk, 0, len(pieces))
	for i, piece := range pieces {
		meta := make(map[string]any, len(doc.Metadata))
		for k, v := range doc.Metadata {
			meta[k] = v
		}
		chunks = append(chunks, domain.Chunk{
			Content:    strings.TrimSpace(piece),
			SourceFile: doc.SourceFile,
			Position:   i,
			Metadata:   meta,
		})
	}

	return chunks, nil
}

// Split cuts text into word windows of roughly size characters.
//
// Text no longer than size (after trimming) is returned whole. Otherwise
// words are accumulated, each counting its length plus one separator, and
// a window is emitted as soon as the running length reaches size. The last
// overlap words of an emitted window (or all of them, if fewer) start the
// next one. Remaining words form the final window. Words are never split,
// so a window may exceed size by up to one word. Blank text yields nothing.
func Split(text string, size, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if utf8.RuneCountInString(text) <= size {
		return []string{text}
	}

	var (
		out    []string
		buf    []string
		curLen int
	)

	for _, word := range strings.Fields(text) {
		buf = append(buf, word)
		curLen += utf8.RuneCountInString(word) + 1
		if curLen < size {
			continue
		}
		out = append(out, strings.Join(buf, " "))
		if len(buf) > overlap {
			buf = append([]string(nil), buf[len(buf)-overlap:]...)
		}
		curLen = windowLen(buf)
	}

	if len(buf) > 0 {
		out = append(out, strings.Join(buf, " "))
	}

	return out
}

func windowLen(words []string) int {
	n := 0
	for _, w := range words {
		n += utf8.RuneCountInString(w) + 1
	}
	return n
}
