package retrieval

import (
	"sort"
	"strings"

	"docqa/internal/core/domain"
)

// Ranking defaults. All of them are tunable through Engine options.
const (
	// DefaultScoreThreshold discards near-irrelevant matches. The
	// comparison is strict: a chunk scoring exactly the threshold is
	// excluded.
	DefaultScoreThreshold = 0.1

	// DefaultMaxEvidence is the maximum number of evidence chunks
	// returned per question.
	DefaultMaxEvidence = 3

	// DefaultMinTermMatches is the number of distinct query terms a
	// chunk must contain to pass the minimum-term-match gate.
	DefaultMinTermMatches = 2

	// gateTermCount is the query term count above which the gate applies.
	// Short queries pass through ungated.
	gateTermCount = 2
)

// ScoredChunk pairs a corpus chunk with its relevance score.
type ScoredChunk struct {
	Record domain.ChunkRecord
	Score  float64
}

// Ranker turns per-chunk scores into the final evidence set.
type Ranker struct {
	threshold      float64
	maxEvidence    int
	minTermMatches int
}

// NewRanker creates a ranker with the given cutoffs.
func NewRanker(threshold float64, maxEvidence, minTermMatches int) *Ranker {
	return &Ranker{
		threshold:      threshold,
		maxEvidence:    maxEvidence,
		minTermMatches: minTermMatches,
	}
}

// Rank filters chunks above the score threshold, sorts them by score
// descending, truncates to the evidence limit and applies the
// minimum-term-match gate. An empty result is the no-evidence condition,
// not an error.
//
// Ties keep corpus iteration order: the sort is stable and the corpus is
// ordered by document upload time then chunk position, so ranking is
// reproducible.
func (r *Ranker) Rank(records []domain.ChunkRecord, scores []float64, queryTerms []string) []ScoredChunk {
	ranked := make([]ScoredChunk, 0, len(records))
	for i, rec := range records {
		if scores[i] > r.threshold {
			ranked = append(ranked, ScoredChunk{Record: rec, Score: scores[i]})
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	if len(ranked) > r.maxEvidence {
		ranked = ranked[:r.maxEvidence]
	}

	// The gate rejects chunks that score on a single incidental shared
	// term while letting short queries through unchanged.
	if len(queryTerms) > gateTermCount {
		gated := ranked[:0]
		for _, sc := range ranked {
			if countTermMatches(sc.Record.Text, queryTerms) >= r.minTermMatches {
				gated = append(gated, sc)
			}
		}
		ranked = gated
	}

	return ranked
}

// countTermMatches counts how many distinct query terms appear in the
// chunk text as case-insensitive substrings.
func countTermMatches(chunkText string, queryTerms []string) int {
	lower := strings.ToLower(chunkText)
	seen := make(map[string]struct{}, len(queryTerms))
	matches := 0
	for _, term := range queryTerms {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		if strings.Contains(lower, term) {
			matches++
		}
	}
	return matches
}
