package retrieval

import "strings"

// Highlight phrase bounds. Longer phrases are checked first so a 6-word
// match is recorded before the shorter phrases it contains.
const (
	maxPhraseWords = 6
	minPhraseWords = 3

	// minPhraseChars is the minimum character length of a recorded
	// phrase; the comparison is strict.
	minPhraseChars = 10
)

// Highlighter extracts verbatim phrases shared between a generated
// answer and an evidence chunk, for citation display.
type Highlighter struct {
	tok *Tokenizer
}

// NewHighlighter creates a highlighter using tok for answer normalization.
func NewHighlighter(tok *Tokenizer) *Highlighter {
	return &Highlighter{tok: tok}
}

// Highlights returns the normalized answer phrases that appear as
// case-insensitive substrings of chunkText. For each candidate length
// from 6 words down to 3, every contiguous window of the answer's
// normalized words is tried; windows joined with single spaces that occur
// in the chunk and exceed 10 characters are recorded. Results are
// deduplicated by exact string equality in first-seen order. An empty
// answer produces no highlights.
func (h *Highlighter) Highlights(answer, chunkText string) []string {
	words := h.tok.Words(answer)
	if len(words) == 0 {
		return nil
	}

	chunkLower := strings.ToLower(chunkText)

	var phrases []string
	seen := make(map[string]struct{})
	for length := maxPhraseWords; length >= minPhraseWords; length-- {
		for i := 0; i+length <= len(words); i++ {
			phrase := strings.Join(words[i:i+length], " ")
			if len(phrase) <= minPhraseChars {
				continue
			}
			if !strings.Contains(chunkLower, phrase) {
				continue
			}
			if _, dup := seen[phrase]; dup {
				continue
			}
			seen[phrase] = struct{}{}
			phrases = append(phrases, phrase)
		}
	}
	return phrases
}
