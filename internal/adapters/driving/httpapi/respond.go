package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"docqa/internal/core/domain"
	"docqa/internal/logger"
)

// errorResponse is the error body shape for every failure.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Encoding response: %v", err)
	}
}

// writeError writes an error body with the given status and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeDomainError maps a service error onto the HTTP taxonomy:
// validation 400, missing entity or corpus 404, missing credential 503,
// anything else (upstream failures included) a generic 500.
func writeDomainError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNoCorpus):
		writeError(w, http.StatusNotFound, "No documents found to answer from.")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Document not found or empty")
	case errors.Is(err, domain.ErrLLMUnavailable):
		writeError(w, http.StatusServiceUnavailable, "LLM service not configured.")
	default:
		logger.Error("%s: %v", fallback, err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
