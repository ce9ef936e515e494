package domain

import "time"

// Document represents an uploaded document.
// It is created once at upload time and never mutated afterwards.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Name is the display name, normally the uploaded file name.
	Name string

	// UploadedAt is when the document was ingested.
	UploadedAt time.Time
}

// DocumentInfo is a document summary for listing purposes.
type DocumentInfo struct {
	// ID is the unique identifier for the document.
	ID string

	// Name is the display name.
	Name string

	// UploadedAt is when the document was ingested.
	UploadedAt time.Time

	// ChunkCount is the number of stored chunks.
	ChunkCount int
}

// Chunk represents a retrievable unit within a document.
// Documents are split into fixed-size word windows at ingestion time.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the parent Document.
	DocumentID string

	// Position is the ordinal position within the document.
	// Positions are contiguous and match original document order.
	Position int

	// Text is the chunk's text, a contiguous slice of the document's
	// whitespace-delimited words joined with single spaces.
	Text string
}

// ChunkRecord is a chunk joined with its document's display name.
// The full corpus is read as ChunkRecords at the start of every query.
type ChunkRecord struct {
	// ChunkID is the unique identifier for the chunk.
	ChunkID string

	// DocumentID links to the owning document.
	DocumentID string

	// DocumentName is the owning document's display name.
	DocumentName string

	// Text is the chunk text.
	Text string
}

// IngestResult summarises a single ingested document.
type IngestResult struct {
	// DocumentID is the created document's identifier.
	DocumentID string

	// Name is the document's display name.
	Name string

	// ChunkCount is the number of chunks stored.
	ChunkCount int
}
