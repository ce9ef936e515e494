package driven

import "context"

// CompletionService is an opaque external text-completion service.
// This is an optional service - when nil, asking questions fails with
// domain.ErrLLMUnavailable while the rest of the application keeps working.
//
// Implementations may include:
//   - Groq (OpenAI-compatible chat completions)
//   - Any other OpenAI-compatible endpoint
type CompletionService interface {
	// Complete produces an answer for the given system and user prompts.
	// The call is bounded by the adapter's request timeout in addition to
	// ctx; exceeding it is a failure, not a partial result. Response
	// shapes vary between providers and must be defensively unwrapped by
	// the adapter.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Used by the status endpoint.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
