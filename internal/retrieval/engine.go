package retrieval

import (
	"docqa/internal/core/domain"
	"docqa/internal/logger"
)

// Engine bundles the tokenizer, index construction, ranking and
// highlighting into one retrieval pipeline. It is stateless across
// calls: every Retrieve builds a fresh index from the corpus snapshot it
// is handed, so concurrent questions never share mutable state.
type Engine struct {
	tok         *Tokenizer
	ranker      *Ranker
	highlighter *Highlighter
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	threshold      float64
	maxEvidence    int
	minTermMatches int
	tokOpts        []TokenizerOption
}

// WithScoreThreshold overrides DefaultScoreThreshold.
func WithScoreThreshold(threshold float64) EngineOption {
	return func(c *engineConfig) {
		if threshold > 0 {
			c.threshold = threshold
		}
	}
}

// WithMaxEvidence overrides DefaultMaxEvidence.
func WithMaxEvidence(n int) EngineOption {
	return func(c *engineConfig) {
		if n > 0 {
			c.maxEvidence = n
		}
	}
}

// WithMinTermMatches overrides DefaultMinTermMatches.
func WithMinTermMatches(n int) EngineOption {
	return func(c *engineConfig) {
		if n > 0 {
			c.minTermMatches = n
		}
	}
}

// WithTokenizerOptions forwards options to the engine's tokenizer.
func WithTokenizerOptions(opts ...TokenizerOption) EngineOption {
	return func(c *engineConfig) {
		c.tokOpts = append(c.tokOpts, opts...)
	}
}

// NewEngine creates a retrieval engine with documented defaults:
// threshold 0.1, at most 3 evidence chunks, 2 minimum term matches.
func NewEngine(opts ...EngineOption) *Engine {
	cfg := engineConfig{
		threshold:      DefaultScoreThreshold,
		maxEvidence:    DefaultMaxEvidence,
		minTermMatches: DefaultMinTermMatches,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	tok := NewTokenizer(cfg.tokOpts...)
	return &Engine{
		tok:         tok,
		ranker:      NewRanker(cfg.threshold, cfg.maxEvidence, cfg.minTermMatches),
		highlighter: NewHighlighter(tok),
	}
}

// Tokenizer returns the engine's tokenizer.
func (e *Engine) Tokenizer() *Tokenizer {
	return e.tok
}

// Retrieve scores the corpus snapshot against the question and returns
// the evidence chunks, highest relevance first, along with the tokenized
// query terms.
//
// When every question word is filtered away (all stopwords or too
// short), scoring falls back to the question's raw normalized words so a
// terse question still has a chance to match; the gate stays off in that
// case because there are no terms to count.
func (e *Engine) Retrieve(records []domain.ChunkRecord, question string) ([]ScoredChunk, []string) {
	terms := e.tok.Terms(question)

	queryWords := terms
	if len(queryWords) == 0 {
		queryWords = e.tok.Words(question)
		logger.Debug("No query terms survived filtering, scoring raw words: %v", queryWords)
	}

	idx := BuildIndex(records, e.tok)
	scores := idx.Score(queryWords)
	evidence := e.ranker.Rank(records, scores, terms)

	logger.Debug("Retrieved %d evidence chunks for %d query terms over %d corpus chunks",
		len(evidence), len(terms), len(records))
	return evidence, terms
}

// HighlightSources converts evidence chunks into externally visible
// sources, attaching the highlight phrases shared with the answer.
func (e *Engine) HighlightSources(answer string, evidence []ScoredChunk) []domain.Source {
	sources := make([]domain.Source, 0, len(evidence))
	for _, sc := range evidence {
		highlights := e.highlighter.Highlights(answer, sc.Record.Text)
		if highlights == nil {
			highlights = []string{}
		}
		sources = append(sources, domain.Source{
			DocumentName: sc.Record.DocumentName,
			ChunkText:    sc.Record.Text,
			Highlights:   highlights,
		})
	}
	return sources
}
