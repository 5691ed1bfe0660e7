package normalisers

import (
	"errors"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
)

// ErrInvalidUTF8 is returned by strict UTF-8 decoding.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Encoding decodes raw file bytes into text.
type Encoding struct {
	// Name is the conventional encoding label.
	Name string

	// Decode converts b to a string or fails.
	Decode func(b []byte) (string, error)
}

// UTF8 decodes strictly: any invalid sequence is an error. A leading
// byte order mark is removed.
var UTF8 = Encoding{Name: "utf-8", Decode: decodeUTF8Strict}

// Latin1 decodes ISO 8859-1. Every byte sequence is valid.
var Latin1 = Encoding{Name: "latin-1", Decode: decodeLatin1}

// UTF8Sig decodes UTF-8 with an optional byte order mark, dropping
// invalid sequences.
var UTF8Sig = Encoding{Name: "utf-8-sig", Decode: DecodePermissive}

// DefaultEncodings is the order in which tabular files are tried.
var DefaultEncodings = []Encoding{UTF8, Latin1, UTF8Sig}

func decodeUTF8Strict(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	s, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("decode utf-8: %w", err)
	}
	return string(s), nil
}

func decodeLatin1(b []byte) (string, error) {
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode latin-1: %w", err)
	}
	return string(s), nil
}

// DecodePermissive decodes UTF-8, removing a leading byte order mark and
// silently dropping invalid byte sequences.
func DecodePermissive(b []byte) (string, error) {
	t := transform.Chain(
		unicode.UTF8BOM.NewDecoder(),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	)
	s, _, err := transform.Bytes(t, b)
	if err != nil {
		return "", fmt.Errorf("decode utf-8: %w", err)
	}
	return string(s), nil
}

// NewDocument builds a document for the file at path with folder metadata
// and any extra metadata merged in.
func NewDocument(path, content string, extra map[string]any) domain.Document {
	meta := map[string]any{domain.MetaFolder: domain.FolderOf(path)}
	for k, v := range extra {
		meta[k] = v
	}
	return domain.Document{
		ID:         uuid.New().String(),
		Path:       path,
		SourceFile: filepath.Base(path),
		Content:    content,
		Metadata:   meta,
	}
}
