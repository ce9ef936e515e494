package httpapi

import (
	"encoding/json"
	"net/http"

	"docqa/internal/core/domain"
)

// askRequest is the question payload.
type askRequest struct {
	Question string `json:"question"`
}

// askResponse is the success payload: the answer plus its evidence.
type askResponse struct {
	Answer  string          `json:"answer"`
	Sources []domain.Source `json:"sources"`
}

// noEvidenceResponse is the degraded payload when retrieval finds
// nothing relevant. It is a 200, not an error, and deliberately keeps
// the original API's "context" key.
type noEvidenceResponse struct {
	Answer  string   `json:"answer"`
	Context []string `json:"context"`
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	answer, err := s.ask.Ask(r.Context(), req.Question)
	if err != nil {
		writeDomainError(w, err, "Failed to process question")
		return
	}

	if answer.NoEvidence {
		writeJSON(w, http.StatusOK, noEvidenceResponse{
			Answer:  answer.Text,
			Context: []string{},
		})
		return
	}

	writeJSON(w, http.StatusOK, askResponse{
		Answer:  answer.Text,
		Sources: answer.Sources,
	})
}
