// Package memory provides in-memory driven port implementations,
// used in tests and for ephemeral runs without a data directory.
package memory

import (
	"context"
	"sort"
	"sync"

	"docqa/internal/core/domain"
	"docqa/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Safe for concurrent use.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
	chunks    map[string][]domain.Chunk
	order     []string // document IDs in insertion order
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
		chunks:    make(map[string][]domain.Chunk),
	}
}

// CreateDocument stores a new document.
func (s *DocumentStore) CreateDocument(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[doc.ID] = *doc
	s.order = append(s.order, doc.ID)
	return nil
}

// SaveChunks stores the chunks of one document.
func (s *DocumentStore) SaveChunks(_ context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	docID := chunks[0].DocumentID
	stored := make([]domain.Chunk, len(chunks))
	copy(stored, chunks)
	sort.SliceStable(stored, func(a, b int) bool { return stored[a].Position < stored[b].Position })
	s.chunks[docID] = stored
	return nil
}

// ListAllChunks returns every chunk joined with its document name, in
// document insertion order then chunk position.
func (s *DocumentStore) ListAllChunks(_ context.Context) ([]domain.ChunkRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var records []domain.ChunkRecord
	for _, docID := range s.order {
		doc := s.documents[docID]
		for _, chunk := range s.chunks[docID] {
			records = append(records, domain.ChunkRecord{
				ChunkID:      chunk.ID,
				DocumentID:   docID,
				DocumentName: doc.Name,
				Text:         chunk.Text,
			})
		}
	}
	return records, nil
}

// GetChunks retrieves all chunks for a document, ordered by position.
func (s *DocumentStore) GetChunks(_ context.Context, documentID string) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chunks := s.chunks[documentID]
	out := make([]domain.Chunk, len(chunks))
	copy(out, chunks)
	return out, nil
}

// ListDocuments returns all documents, newest first, with chunk counts.
func (s *DocumentStore) ListDocuments(_ context.Context) ([]domain.DocumentInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.DocumentInfo, 0, len(s.documents))
	for id, doc := range s.documents {
		docs = append(docs, domain.DocumentInfo{
			ID:         id,
			Name:       doc.Name,
			UploadedAt: doc.UploadedAt,
			ChunkCount: len(s.chunks[id]),
		})
	}
	sort.SliceStable(docs, func(a, b int) bool {
		return docs[a].UploadedAt.After(docs[b].UploadedAt)
	})
	return docs, nil
}

// DeleteDocument removes a document and its chunks.
func (s *DocumentStore) DeleteDocument(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.documents, id)
	delete(s.chunks, id)
	for i, docID := range s.order {
		if docID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
