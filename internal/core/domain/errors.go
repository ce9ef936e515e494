package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input, such as an
	// empty question or an empty uploaded file.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoCorpus indicates there are no uploaded documents to answer from.
	ErrNoCorpus = errors.New("no documents in corpus")

	// ErrLLMUnavailable indicates the completion service is not configured.
	// Asking questions is impossible without it; ingestion still works.
	ErrLLMUnavailable = errors.New("LLM service unavailable")
)
