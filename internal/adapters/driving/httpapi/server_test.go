package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/adapters/driven/storage/memory"
	"docqa/internal/chunker"
	"docqa/internal/core/services"
	"docqa/internal/retrieval"
)

// stubCompletion satisfies driven.CompletionService without network I/O.
type stubCompletion struct {
	answer  string
	pingErr error
}

func (c *stubCompletion) Complete(context.Context, string, string) (string, error) {
	return c.answer, nil
}

func (c *stubCompletion) ModelName() string { return "stub-model" }

func (c *stubCompletion) Ping(context.Context) error { return c.pingErr }

func (c *stubCompletion) Close() error { return nil }

type testEnv struct {
	store   *memory.DocumentStore
	handler http.Handler
}

// newTestEnv wires real services over an in-memory store. completion may
// be nil to exercise the unconfigured-LLM paths.
func newTestEnv(t *testing.T, completion *stubCompletion) *testEnv {
	t.Helper()
	store := memory.NewDocumentStore()
	engine := retrieval.NewEngine()

	ingestSvc := services.NewIngestService(store, chunker.New())
	docSvc := services.NewDocumentService(store)

	var server *Server
	if completion == nil {
		server = NewServer(0, services.NewAskService(store, nil, engine), ingestSvc, docSvc, nil, nil)
	} else {
		server = NewServer(0, services.NewAskService(store, completion, engine), ingestSvc, docSvc, nil, completion)
	}
	return &testEnv{store: store, handler: server.Handler()}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) seed(t *testing.T, name, content string) string {
	t.Helper()
	ingest := services.NewIngestService(e.store, chunker.New())
	result, err := ingest.Ingest(context.Background(), name, content)
	require.NoError(t, err)
	return result.DocumentID
}

func askBody(question string) *bytes.Reader {
	body, _ := json.Marshal(map[string]string{"question": question})
	return bytes.NewReader(body)
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// multipartUpload builds a multipart body with one file per entry.
func multipartUpload(t *testing.T, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="files"; filename="`+name+`"`)
		header.Set("Content-Type", "text/plain")
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestAskEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "Employees get 12 paid sick days annually."})
	env.seed(t, "HR Policy.txt", "Employees get 12 paid sick days every year.")

	req := httptest.NewRequest(http.MethodPost, "/ask", askBody("How many paid sick leaves annually?"))
	rec := env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Answer  string `json:"answer"`
		Sources []struct {
			DocumentName string   `json:"documentName"`
			ChunkText    string   `json:"chunkText"`
			Highlights   []string `json:"highlights"`
		} `json:"sources"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Employees get 12 paid sick days annually.", resp.Answer)
	require.Len(t, resp.Sources, 1)
	assert.Equal(t, "HR Policy.txt", resp.Sources[0].DocumentName)
	assert.Contains(t, resp.Sources[0].Highlights, "get 12 paid sick days")
}

func TestAskEndpointBadJSON(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "x"})

	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader("{not json"))
	rec := env.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskEndpointEmptyQuestion(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "x"})
	env.seed(t, "doc.txt", "some content here")

	req := httptest.NewRequest(http.MethodPost, "/ask", askBody("   "))
	rec := env.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAskEndpointEmptyCorpus(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "x"})

	req := httptest.NewRequest(http.MethodPost, "/ask", askBody("anything at all?"))
	rec := env.do(t, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "No documents found to answer from.", resp.Error)
}

func TestAskEndpointNoLLM(t *testing.T) {
	env := newTestEnv(t, nil)
	env.seed(t, "HR Policy.txt", "Employees get 12 paid sick days every year.")

	req := httptest.NewRequest(http.MethodPost, "/ask", askBody("How many paid sick leaves annually?"))
	rec := env.do(t, req)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "LLM service not configured.", resp.Error)
}

func TestAskEndpointNoEvidence(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "should not appear"})
	env.seed(t, "HR Policy.txt", "Employees get 12 paid sick days every year.")

	req := httptest.NewRequest(http.MethodPost, "/ask", askBody("quantum chromodynamics lagrangian?"))
	rec := env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Answer  string   `json:"answer"`
		Context []string `json:"context"`
	}
	decodeJSON(t, rec, &resp)
	assert.Contains(t, resp.Answer, "couldn't find any relevant information")
	assert.NotNil(t, resp.Context)
	assert.Empty(t, resp.Context)
}

func TestUploadEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "x"})

	body, contentType := multipartUpload(t, map[string]string{
		"notes.txt": "some notes about vacation policy",
	})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message   string `json:"message"`
		Processed []struct {
			Name       string `json:"name"`
			DocumentID string `json:"documentId"`
			Chunks     int    `json:"chunks"`
		} `json:"processed"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Files uploaded and processed successfully", resp.Message)
	require.Len(t, resp.Processed, 1)
	assert.Equal(t, "notes.txt", resp.Processed[0].Name)
	assert.NotEmpty(t, resp.Processed[0].DocumentID)
	assert.Equal(t, 1, resp.Processed[0].Chunks)
}

func TestUploadEndpointRejectsNonText(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "x"})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="files"; filename="report.pdf"`)
	header.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = io.WriteString(part, "%PDF-1.4")
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := env.do(t, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Only .txt files are allowed. Invalid file: report.pdf", resp.Error)
}

func TestUploadEndpointRejectsEmptyFile(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "x"})

	body, contentType := multipartUpload(t, map[string]string{
		"empty.txt": "   \n ",
	})
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := env.do(t, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "File is empty: empty.txt", resp.Error)
}

func TestUploadEndpointNoFiles(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "x"})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := env.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDocumentsEndpoints(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "x"})
	id := env.seed(t, "policy.txt", "vacation carryover rules")

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/documents", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		ChunkCount int    `json:"chunkCount"`
	}
	decodeJSON(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "policy.txt", list[0].Name)
	assert.Equal(t, 1, list[0].ChunkCount)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/documents/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var content struct {
		Content string `json:"content"`
	}
	decodeJSON(t, rec, &content)
	assert.Equal(t, "vacation carryover rules", content.Content)

	rec = env.do(t, httptest.NewRequest(http.MethodDelete, "/documents/"+id, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, httptest.NewRequest(http.MethodGet, "/documents/"+id, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocumentContentNotFound(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "x"})

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/documents/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "Document not found or empty", resp.Error)
}

func TestStatusEndpoint(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "x"})

	rec := env.do(t, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Backend  string `json:"backend"`
		Database string `json:"database"`
		LLM      string `json:"llm"`
	}
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "healthy", resp.Backend)
	assert.Equal(t, "unconfigured", resp.Database)
	assert.Equal(t, "reachable", resp.LLM)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t, &stubCompletion{answer: "x"})

	rec := env.do(t, httptest.NewRequest(http.MethodOptions, "/ask", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
