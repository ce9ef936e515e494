package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"docqa/internal/chunker"
	"docqa/internal/core/domain"
	"docqa/internal/core/ports/driven"
	"docqa/internal/core/ports/driving"
	"docqa/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService creates documents and their chunks from uploaded text.
type IngestService struct {
	docStore driven.DocumentStore
	chunker  *chunker.Chunker
}

// NewIngestService creates a new ingest service.
func NewIngestService(docStore driven.DocumentStore, ch *chunker.Chunker) *IngestService {
	return &IngestService{
		docStore: docStore,
		chunker:  ch,
	}
}

// Ingest validates the upload, creates the document, chunks the content
// and stores the chunks in one batch.
func (s *IngestService) Ingest(ctx context.Context, name, content string) (*domain.IngestResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: document name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: file is empty: %s", domain.ErrInvalidInput, name)
	}

	texts, err := s.chunker.Split(content)
	if err != nil {
		return nil, fmt.Errorf("chunking %s: %w", name, err)
	}

	doc := &domain.Document{
		ID:         uuid.New().String(),
		Name:       name,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.docStore.CreateDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	chunks := make([]domain.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: doc.ID,
			Position:   i,
			Text:       text,
		}
	}
	if err := s.docStore.SaveChunks(ctx, chunks); err != nil {
		return nil, fmt.Errorf("saving chunks: %w", err)
	}

	logger.Info("Ingested %q as document %s (%d chunks)", name, doc.ID, len(chunks))
	return &domain.IngestResult{
		DocumentID: doc.ID,
		Name:       doc.Name,
		ChunkCount: len(chunks),
	}, nil
}
