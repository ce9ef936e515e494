package retrieval

import "strings"

// MinTermLength is the minimum length of a token that survives term
// filtering. Shorter tokens are dropped before scoring.
const MinTermLength = 3

// DefaultStopwords is the closed list of terms excluded from queries:
// common English function words plus a few conversational fillers that
// carry no retrieval signal.
var DefaultStopwords = map[string]struct{}{
	"the": {}, "is": {}, "at": {}, "which": {}, "on": {}, "a": {},
	"an": {}, "and": {}, "or": {}, "of": {}, "to": {}, "in": {},
	"for": {}, "with": {}, "about": {}, "info": {}, "information": {},
	"how": {}, "what": {}, "where": {}, "when": {}, "why": {}, "who": {},
	"please": {}, "tell": {}, "me": {},
}

// Tokenizer normalizes text into query terms. The zero value is not
// usable; construct with NewTokenizer.
//
// Tokenization is deterministic and locale-free: identical input always
// produces identical output.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithStopwords replaces the default stopword set.
func WithStopwords(words map[string]struct{}) TokenizerOption {
	return func(t *Tokenizer) {
		if words != nil {
			t.stopwords = words
		}
	}
}

// WithExtraStopwords adds words to the default stopword set.
func WithExtraStopwords(words []string) TokenizerOption {
	return func(t *Tokenizer) {
		merged := make(map[string]struct{}, len(t.stopwords)+len(words))
		for w := range t.stopwords {
			merged[w] = struct{}{}
		}
		for _, w := range words {
			merged[strings.ToLower(w)] = struct{}{}
		}
		t.stopwords = merged
	}
}

// NewTokenizer creates a tokenizer with the default stopword set.
func NewTokenizer(opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{stopwords: DefaultStopwords}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Words lowercases text, strips every character that is not a word
// character or whitespace, and splits on whitespace runs. No stopword or
// length filtering is applied. Empty input yields no words.
func (t *Tokenizer) Words(text string) []string {
	normalized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '\f', r == '\v':
			return r
		default:
			return -1
		}
	}, text)
	return strings.Fields(normalized)
}

// Terms tokenizes text into query terms: Words minus tokens shorter than
// MinTermLength and minus stopwords. Order is preserved and duplicates
// are kept; scoring sums over every occurrence, matching term frequency
// semantics.
func (t *Tokenizer) Terms(text string) []string {
	words := t.Words(text)
	terms := words[:0]
	for _, w := range words {
		if len(w) < MinTermLength {
			continue
		}
		if _, stop := t.stopwords[w]; stop {
			continue
		}
		terms = append(terms, w)
	}
	return terms
}
