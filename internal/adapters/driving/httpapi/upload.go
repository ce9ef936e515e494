package httpapi

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// maxUploadBytes bounds one upload request held in memory.
const maxUploadBytes = 32 << 20 // 32 MiB

// processedFile summarises one ingested upload.
type processedFile struct {
	Name       string `json:"name"`
	DocumentID string `json:"documentId"`
	Chunks     int    `json:"chunks"`
}

// uploadResponse is the upload success payload.
type uploadResponse struct {
	Message   string          `json:"message"`
	Processed []processedFile `json:"processed"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No files uploaded")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "No files uploaded")
		return
	}

	processed := make([]processedFile, 0, len(files))
	for _, header := range files {
		if !isPlainText(header) {
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("Only .txt files are allowed. Invalid file: %s", header.Filename))
			return
		}

		content, err := readFile(header)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error processing files")
			return
		}
		if strings.TrimSpace(content) == "" {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("File is empty: %s", header.Filename))
			return
		}

		result, err := s.ingest.Ingest(r.Context(), header.Filename, content)
		if err != nil {
			writeDomainError(w, err, "Internal server error processing files")
			return
		}

		processed = append(processed, processedFile{
			Name:       result.Name,
			DocumentID: result.DocumentID,
			Chunks:     result.ChunkCount,
		})
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Message:   "Files uploaded and processed successfully",
		Processed: processed,
	})
}

// isPlainText accepts text/plain uploads or a .txt extension.
func isPlainText(header *multipart.FileHeader) bool {
	contentType := header.Header.Get("Content-Type")
	if contentType == "text/plain" || strings.HasPrefix(contentType, "text/plain;") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(header.Filename), ".txt")
}

// readFile reads one multipart file fully into memory.
func readFile(header *multipart.FileHeader) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	return string(data), nil
}
