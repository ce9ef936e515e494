package driving

import (
	"context"

	"docqa/internal/core/domain"
)

// AskService answers natural-language questions over the uploaded corpus.
type AskService interface {
	// Ask retrieves evidence for the question, calls the completion
	// service and returns the answer with its sources.
	//
	// Errors: domain.ErrInvalidInput for an empty question,
	// domain.ErrNoCorpus when nothing has been uploaded,
	// domain.ErrLLMUnavailable when no completion service is configured.
	// A question with no relevant evidence is NOT an error; it yields an
	// Answer with NoEvidence set.
	Ask(ctx context.Context, question string) (*domain.Answer, error)
}
