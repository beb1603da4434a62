package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/travelflow/tripflow/internal/domain"
)

// pruneDayPlans handles POST /api/trips/{id}/days/prune.
func (s *Server) pruneDayPlans(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.PruneDayPlans(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// setDayStatus handles PUT /api/trips/{id}/days/{date}/status.
func (s *Server) setDayStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status domain.DayStatus `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, "request body must be {\"status\": ...}")
		return
	}

	trip, err := s.trips.SetDayStatus(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "date"), body.Status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// addActivity handles POST /api/trips/{id}/days/{date}/activities.
func (s *Server) addActivity(w http.ResponseWriter, r *http.Request) {
	var act domain.Activity
	if err := decodeJSON(r, &act); err != nil {
		writeRequestError(w, "request body must be an activity object")
		return
	}

	trip, err := s.trips.AddActivity(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "date"), act)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// removeActivity handles DELETE /api/trips/{id}/activities/{activityID}.
func (s *Server) removeActivity(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveActivity(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "activityID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// advanceActivity handles POST /api/trips/{id}/activities/{activityID}/advance.
func (s *Server) advanceActivity(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.AdvanceActivity(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "activityID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// transferActivity handles POST /api/trips/{id}/activities/{activityID}/transfer
// with body {"date": "YYYY-MM-DD", "timeBlock": "..."}.
func (s *Server) transferActivity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date      string           `json:"date"`
		TimeBlock domain.TimeBlock `json:"timeBlock"`
	}
	if err := decodeJSON(r, &body); err != nil || body.Date == "" {
		writeRequestError(w, "request body must carry a date and timeBlock")
		return
	}
	if body.TimeBlock == "" {
		body.TimeBlock = domain.BlockUnplanned
	}

	trip, err := s.trips.TransferActivity(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "activityID"), body.Date, body.TimeBlock)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}
