package httpapi

import (
	"context"
	"net/http"
	"time"
)

// statusResponse reports component health.
type statusResponse struct {
	Backend  string `json:"backend"`
	Database string `json:"database"`
	LLM      string `json:"llm"`
}

// statusProbeTimeout bounds the database and LLM reachability probes so
// the status endpoint stays fast even when upstreams hang.
const statusProbeTimeout = 3 * time.Second

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), statusProbeTimeout)
	defer cancel()

	resp := statusResponse{Backend: "healthy", Database: "unconfigured", LLM: "unconfigured"}

	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			resp.Database = "error"
		} else {
			resp.Database = "connected"
		}
	}

	if s.llm != nil {
		if err := s.llm.Ping(ctx); err != nil {
			resp.LLM = "unreachable"
		} else {
			resp.LLM = "reachable"
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
