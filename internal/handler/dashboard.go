package handler

import "net/http"

// getPipeline handles GET /api/dashboard/pipeline.
func (s *Server) getPipeline(w http.ResponseWriter, r *http.Request) {
	pipeline, err := s.dashboard.Pipeline(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, pipeline)
}

// getDepartures handles GET /api/dashboard/departures.
func (s *Server) getDepartures(w http.ResponseWriter, r *http.Request) {
	departures, err := s.dashboard.Departures(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, departures)
}
