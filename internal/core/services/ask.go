package services

import (
	"context"
	"fmt"
	"strings"

	"docqa/internal/core/domain"
	"docqa/internal/core/ports/driven"
	"docqa/internal/core/ports/driving"
	"docqa/internal/logger"
	"docqa/internal/retrieval"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// AskService answers questions over the uploaded corpus. Each question
// is an independent, stateless unit of work: the corpus is snapshotted
// at call start, processing is sequential, and the only suspension point
// is the completion call.
type AskService struct {
	docStore   driven.DocumentStore
	completion driven.CompletionService
	engine     *retrieval.Engine
}

// NewAskService creates a new ask service. The completion parameter is
// optional (can be nil); asking then fails with domain.ErrLLMUnavailable.
func NewAskService(
	docStore driven.DocumentStore,
	completion driven.CompletionService,
	engine *retrieval.Engine,
) *AskService {
	return &AskService{
		docStore:   docStore,
		completion: completion,
		engine:     engine,
	}
}

// Ask runs the retrieval pipeline for one question: tokenize, snapshot
// the corpus, score, rank, call the completion service, highlight.
func (s *AskService) Ask(ctx context.Context, question string) (*domain.Answer, error) {
	logger.Section("Question")

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", domain.ErrInvalidInput)
	}
	logger.Debug("Question: %q", question)

	records, err := s.docStore.ListAllChunks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing corpus chunks: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrNoCorpus
	}
	logger.Debug("Corpus snapshot: %d chunks", len(records))

	evidence, _ := s.engine.Retrieve(records, question)
	if len(evidence) == 0 {
		logger.Info("No relevant evidence for question")
		return &domain.Answer{
			Text:       domain.NoEvidenceAnswer,
			Sources:    []domain.Source{},
			NoEvidence: true,
		}, nil
	}

	if s.completion == nil {
		return nil, domain.ErrLLMUnavailable
	}

	answerText, err := s.completion.Complete(ctx, systemPrompt, buildUserPrompt(evidence, question))
	if err != nil {
		return nil, fmt.Errorf("completion call: %w", err)
	}

	return &domain.Answer{
		Text:    answerText,
		Sources: s.engine.HighlightSources(answerText, evidence),
	}, nil
}
