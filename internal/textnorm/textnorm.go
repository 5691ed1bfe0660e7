// Package textnorm provides the accent- and case-insensitive text handling
// shared by ingestion and search: normalisation, tokenisation and the two
// stopword sets.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MinTokenLength is the shortest token, in characters, kept by Tokens.
const MinTokenLength = 3

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{3,}`)

// Normalize lower-cases s, decomposes it (NFKD), drops combining marks and
// trims surrounding whitespace, so "  CAFÉ " becomes "cafe".
// It is pure and idempotent.
func Normalize(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}
	// Compatibility decomposition can expose upper-case letters (U+2121 → "TEL").
	return strings.TrimSpace(strings.ToLower(out))
}

// Tokens returns the maximal runs of letters, digits and underscores that
// are at least MinTokenLength characters long, in order, duplicates kept.
// Tokens does not change case.
func Tokens(s string) []string {
	return tokenPattern.FindAllString(s, -1)
}

// TokenSet returns the distinct tokens of s.
func TokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range Tokens(s) {
		set[tok] = struct{}{}
	}
	return set
}

// Keywords returns the keyword set of raw chunk content: the distinct
// lower-cased tokens minus KeywordStopwords. Accents are preserved.
func Keywords(content string) map[string]struct{} {
	set := TokenSet(strings.ToLower(content))
	for w := range KeywordStopwords {
		delete(set, w)
	}
	return set
}

// QueryKeywords returns the distinct tokens of the normalised query minus
// QueryStopwords.
func QueryKeywords(query string) map[string]struct{} {
	set := TokenSet(Normalize(query))
	for w := range QueryStopwords {
		delete(set, w)
	}
	return set
}

// Contains reports whether the normalised form of needle occurs in the
// normalised form of haystack.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
