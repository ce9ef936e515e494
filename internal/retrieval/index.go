package retrieval

import (
	"math"

	"docqa/internal/core/domain"
)

// Index holds TF-IDF statistics for one corpus snapshot. It is built
// fresh for every query and holds no state between calls; correctness
// never depends on incremental maintenance, at the cost of O(corpus)
// work per question.
type Index struct {
	records []domain.ChunkRecord

	// termCounts[i] maps a normalized word to its frequency in chunk i.
	termCounts []map[string]int

	// df maps a word to the number of chunks containing it at least once.
	df map[string]int
}

// BuildIndex computes term frequencies and document frequencies over the
// given corpus snapshot. Chunk text is normalized with tok.Words, without
// stopword filtering: stopwords in chunks never match filtered query
// terms, so they cannot affect scores.
func BuildIndex(records []domain.ChunkRecord, tok *Tokenizer) *Index {
	idx := &Index{
		records:    records,
		termCounts: make([]map[string]int, len(records)),
		df:         make(map[string]int, 256),
	}

	for i, rec := range records {
		counts := make(map[string]int)
		for _, w := range tok.Words(rec.Text) {
			counts[w]++
		}
		idx.termCounts[i] = counts
		for w := range counts {
			idx.df[w]++
		}
	}

	return idx
}

// idf returns the smoothed inverse document frequency of a term. A term
// present in every chunk scores near zero; rare terms score higher.
func (idx *Index) idf(term string) float64 {
	n := float64(len(idx.records))
	df := float64(idx.df[term])
	return math.Log((n + 1) / (df + 1))
}

// Score computes, for every chunk in the corpus, the sum over the query
// terms of term frequency times inverse document frequency. A chunk
// sharing no term with the query scores 0.
func (idx *Index) Score(queryTerms []string) []float64 {
	scores := make([]float64, len(idx.records))
	for _, term := range queryTerms {
		idf := idx.idf(term)
		for i, counts := range idx.termCounts {
			if tf := counts[term]; tf > 0 {
				scores[i] += float64(tf) * idf
			}
		}
	}
	return scores
}
