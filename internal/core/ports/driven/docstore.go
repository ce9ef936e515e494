package driven

import (
	"context"

	"docqa/internal/core/domain"
)

// DocumentStore persists documents and chunks.
// Backed by SQLite for durable storage; an in-memory implementation
// exists for tests and ephemeral runs.
//
// The store must support concurrent reads: every question reads the
// full corpus through ListAllChunks on its own goroutine.
type DocumentStore interface {
	// CreateDocument stores a new document.
	CreateDocument(ctx context.Context, doc *domain.Document) error

	// SaveChunks stores the chunks of one document in a single batch.
	// Chunk order follows the Position field.
	SaveChunks(ctx context.Context, chunks []domain.Chunk) error

	// ListAllChunks returns every chunk in the corpus joined with its
	// document name, ordered by document upload time then chunk position.
	// This ordering is the ranking tie-break, so it must be stable.
	ListAllChunks(ctx context.Context) ([]domain.ChunkRecord, error)

	// GetChunks retrieves all chunks for a document, ordered by position.
	GetChunks(ctx context.Context, documentID string) ([]domain.Chunk, error)

	// ListDocuments returns all documents, newest first, with chunk counts.
	ListDocuments(ctx context.Context) ([]domain.DocumentInfo, error)

	// DeleteDocument removes a document and its chunks.
	DeleteDocument(ctx context.Context, id string) error
}
