// Package domain defines the core business entities for docqa.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An uploaded document and its metadata
//   - Chunk: A fixed-size passage of a document, the unit of retrieval
//   - ChunkRecord: A chunk joined with its document name, as read per query
//   - Answer: A generated answer with its supporting sources
//   - Source: An evidence chunk with highlight phrases for citation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
