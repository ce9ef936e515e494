package services

import (
	"context"
	"fmt"
	"strings"

	"docqa/internal/core/domain"
	"docqa/internal/core/ports/driven"
	"docqa/internal/core/ports/driving"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages uploaded documents.
type DocumentService struct {
	docStore driven.DocumentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore) *DocumentService {
	return &DocumentService{docStore: docStore}
}

// List returns all documents, newest first, with chunk counts.
func (s *DocumentService) List(ctx context.Context) ([]domain.DocumentInfo, error) {
	docs, err := s.docStore.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	return docs, nil
}

// Content returns the document's full text, its chunk texts joined with
// blank lines in position order.
func (s *DocumentService) Content(ctx context.Context, documentID string) (string, error) {
	chunks, err := s.docStore.GetChunks(ctx, documentID)
	if err != nil {
		return "", fmt.Errorf("getting chunks: %w", err)
	}
	if len(chunks) == 0 {
		return "", fmt.Errorf("%w: document %s", domain.ErrNotFound, documentID)
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	return strings.Join(texts, "\n\n"), nil
}

// Delete removes a document and its chunks.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	if err := s.docStore.DeleteDocument(ctx, documentID); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}
