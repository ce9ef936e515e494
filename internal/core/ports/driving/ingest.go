package driving

import (
	"context"

	"docqa/internal/core/domain"
)

// IngestService turns uploaded text into stored documents and chunks.
type IngestService interface {
	// Ingest creates a document named name from the given plain-text
	// content, chunks it and stores the chunks.
	//
	// Errors: domain.ErrInvalidInput when name is empty or content is
	// empty after trimming.
	Ingest(ctx context.Context, name, content string) (*domain.IngestResult, error)
}
