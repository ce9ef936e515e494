package services

import (
	"fmt"
	"strings"

	"docqa/internal/retrieval"
)

// systemPrompt constrains the completion service to the provided context.
const systemPrompt = `You are a helpful assistant. Use ONLY the provided context to answer the user's question.
If the answer is not found in the context, say "Answer not found in uploaded documents."
Do not make up information.
`

// buildUserPrompt assembles the grounding context and the question into
// the user prompt. Evidence chunks are numbered so the model can refer
// to them.
func buildUserPrompt(evidence []retrieval.ScoredChunk, question string) string {
	parts := make([]string, len(evidence))
	for i, sc := range evidence {
		parts[i] = fmt.Sprintf("[Source %d]: %s", i+1, sc.Record.Text)
	}

	return fmt.Sprintf("Context:\n%s\n\nQuestion: %s\n", strings.Join(parts, "\n\n"), question)
}
