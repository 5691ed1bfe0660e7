package textnorm

// KeywordStopwords are removed from chunk keywords at ingestion time.
var KeywordStopwords = setOf(
	"les", "des", "une", "que", "qui", "pour", "par", "sur", "dans",
	"avec", "est", "sont", "the", "and", "for", "that", "this", "with",
	"has", "have", "from", "aux", "ces", "leur", "leurs", "tout",
	"mais", "plus", "aussi", "tres", "bien", "etre", "avoir", "fait",
	"comme", "meme", "alors", "donc", "car", "pas", "ses", "son", "elle",
)

// QueryStopwords are removed from query keywords at search time.
// The list differs from KeywordStopwords; search never reads chunk keywords.
var QueryStopwords = setOf(
	"les", "des", "une", "que", "qui", "pour", "the", "and", "for",
	"quels", "comment", "what", "how", "est", "sont", "avec", "dans",
)

func setOf(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
