package domain

// NoEvidenceAnswer is the sentinel answer returned when retrieval finds
// no relevant chunks. It is a degraded success, not an error.
const NoEvidenceAnswer = "I couldn't find any relevant information in the uploaded documents."

// Source is the externally visible evidence unit returned per question.
type Source struct {
	// DocumentName is the display name of the document the chunk belongs to.
	DocumentName string `json:"documentName"`

	// ChunkText is the raw text of the evidence chunk.
	ChunkText string `json:"chunkText"`

	// Highlights are verbatim phrases shared between the generated
	// answer and ChunkText, for citation display. First-seen order.
	Highlights []string `json:"highlights"`
}

// Answer is the result of asking a question over the corpus.
type Answer struct {
	// Text is the generated answer, or NoEvidenceAnswer when no
	// relevant chunks were found.
	Text string

	// Sources are the evidence chunks the answer was grounded on,
	// highest relevance first. Empty when NoEvidence is set.
	Sources []Source

	// NoEvidence reports that retrieval found nothing relevant and
	// Text carries the sentinel answer.
	NoEvidence bool
}
