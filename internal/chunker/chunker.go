// Package chunker provides fixed-size word-window text chunking.
package chunker

import (
	"fmt"
	"strings"

	"docqa/internal/core/domain"
)

// DefaultChunkSize is the default number of words per chunk.
const DefaultChunkSize = 500

// Chunker splits document text into consecutive word windows.
type Chunker struct {
	chunkSize int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the window size in words.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Split cuts the whitespace-tokenized word sequence of text into
// consecutive windows of the configured size; the last window may be
// shorter. Each chunk is the window's words joined with single spaces,
// so joining all chunks with spaces reconstructs the original word
// sequence. Windows that trim to nothing are discarded.
//
// Returns domain.ErrInvalidInput when text is empty after trimming.
func (c *Chunker) Split(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: document text is empty", domain.ErrInvalidInput)
	}

	words := strings.Fields(text)
	chunks := make([]string, 0, (len(words)+c.chunkSize-1)/c.chunkSize)

	for start := 0; start < len(words); start += c.chunkSize {
		end := start + c.chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[start:end], " ")
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		chunks = append(chunks, chunk)
	}

	return chunks, nil
}
