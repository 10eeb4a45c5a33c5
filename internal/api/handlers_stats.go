package api

import "net/http"

func (s *Server) handleExtractStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"window": "1h",
		"stats":  s.runner.Stats().Snapshot(),
	})
}
