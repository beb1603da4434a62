package handler

import (
	"net/http"

	"github.com/travelflow/tripflow/internal/domain"
)

// getAgency handles GET /api/agency.
func (s *Server) getAgency(w http.ResponseWriter, r *http.Request) {
	profile, err := s.agency.Get(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}

// updateAgency handles PUT /api/agency.
func (s *Server) updateAgency(w http.ResponseWriter, r *http.Request) {
	var profile domain.AgencyProfile
	if err := decodeJSON(r, &profile); err != nil {
		writeRequestError(w, "request body must be an agency profile")
		return
	}

	updated, err := s.agency.Update(r.Context(), profile)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}
