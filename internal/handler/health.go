package handler

import "net/http"

// GetHealth handles GET /health.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, envelope{Success: true, Data: map[string]string{"status": "ok"}})
}
