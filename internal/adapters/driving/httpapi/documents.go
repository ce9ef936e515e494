package httpapi

import (
	"net/http"
	"time"
)

// documentInfoResponse is one entry of the document listing.
type documentInfoResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	UploadedAt time.Time `json:"uploadedAt"`
	ChunkCount int       `json:"chunkCount"`
}

// documentContentResponse carries a document's reassembled text.
type documentContentResponse struct {
	Content string `json:"content"`
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.documents.List(r.Context())
	if err != nil {
		writeDomainError(w, err, "Failed to fetch documents")
		return
	}

	out := make([]documentInfoResponse, len(docs))
	for i, d := range docs {
		out[i] = documentInfoResponse{
			ID:         d.ID,
			Name:       d.Name,
			UploadedAt: d.UploadedAt,
			ChunkCount: d.ChunkCount,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleDocumentContent(w http.ResponseWriter, r *http.Request) {
	content, err := s.documents.Content(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainError(w, err, "Failed to fetch document content")
		return
	}
	writeJSON(w, http.StatusOK, documentContentResponse{Content: content})
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.documents.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeDomainError(w, err, "Failed to delete document")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
