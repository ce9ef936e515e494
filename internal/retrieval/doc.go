// Package retrieval implements the lexical retrieval and evidence
// highlighting engine: query tokenization, per-query TF-IDF scoring over
// the chunk corpus, relevance ranking with a minimum-term-match gate, and
// extraction of answer-grounded highlight phrases.
//
// Everything in this package is pure computation over in-memory data.
// There are no error paths: malformed scores or tokens cannot occur on
// well-formed input, and the documented fallbacks (raw-question scoring,
// empty highlight sets) are ordinary results, not failures.
package retrieval
