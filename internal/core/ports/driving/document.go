package driving

import (
	"context"

	"docqa/internal/core/domain"
)

// DocumentService manages uploaded documents.
type DocumentService interface {
	// List returns all documents, newest first, with chunk counts.
	List(ctx context.Context) ([]domain.DocumentInfo, error)

	// Content returns the full text of a document, reassembled from its
	// chunks. Returns domain.ErrNotFound when the document is missing or
	// has no chunks.
	Content(ctx context.Context, documentID string) (string, error)

	// Delete removes a document and its chunks.
	Delete(ctx context.Context, documentID string) error
}
