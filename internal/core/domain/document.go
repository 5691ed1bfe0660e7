package domain

import (
	"path/filepath"
	"strings"
)

// Metadata keys shared by documents and chunks.
const (
	// MetaFolder is the name of the directory that contains the source file.
	MetaFolder = "folder"

	// MetaPage is the 1-based page number for paginated sources.
	MetaPage = "page"
)

// Document is the text extracted from one knowledge base file, or from one
// page of a paginated file. Normalisers produce documents; the post-processor
// pipeline turns them into chunks.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Path is the location of the file on disk.
	Path string

	// SourceFile is the base name of the file ("rapport.pdf").
	SourceFile string

	// Content is the full extracted text before chunking.
	Content string

	// Metadata contains folder plus format-specific keys such as page.
	Metadata map[string]any
}

// Chunk is a bounded span of source text treated as the atomic retrieval
// unit. Chunks are immutable once stored in the corpus.
type Chunk struct {
	// Content is the trimmed text. Accents and case are kept for display.
	Content string

	// SourceFile is the base name of the file the chunk came from.
	SourceFile string

	// Position is the ordinal position within the document.
	Position int

	// Metadata holds the folder name and, for paginated sources, the page.
	Metadata map[string]any

	// Keywords is the set of lowercase tokens of at least three characters
	// found in the raw content, stopwords removed. Derived once at creation.
	Keywords map[string]struct{}
}

// Folder returns the folder metadata, or "" when absent.
func (c Chunk) Folder() string {
	folder, _ := c.Metadata[MetaFolder].(string)
	return folder
}

// Page returns the 1-based page number and whether the chunk has one.
func (c Chunk) Page() (int, bool) {
	page, ok := c.Metadata[MetaPage].(int)
	return page, ok
}

// HasKeyword reports whether the chunk's precomputed keyword set contains kw.
func (c Chunk) HasKeyword(kw string) bool {
	_, ok := c.Keywords[kw]
	return ok
}

// FolderOf returns the name of the directory containing path.
func FolderOf(path string) string {
	return filepath.Base(filepath.Dir(path))
}

// ExtensionOf returns the lower-cased extension of path, including the dot.
func ExtensionOf(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
