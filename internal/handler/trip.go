package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/travelflow/tripflow/internal/domain"
)

// createTrip handles POST /api/trips.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.Trip
	if err := decodeJSON(r, &trip); err != nil {
		writeRequestError(w, "request body must be a trip object")
		return
	}

	created, err := s.trips.Create(r.Context(), &trip)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// listTrips handles GET /api/trips. ?q= filters by client or trip name;
// ?page= and ?limit= page through the results.
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	page, ok := intQuery(r, "page")
	if !ok {
		writeRequestError(w, "page must be a positive integer")
		return
	}
	limit, ok := intQuery(r, "limit")
	if !ok {
		writeRequestError(w, "limit must be a positive integer")
		return
	}

	trips, err := s.trips.List(r.Context(), r.URL.Query().Get("q"), domain.NewPaginationParams(page, limit))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trips)
}

// intQuery parses an optional positive integer query parameter. Absent
// parameters return (nil, true) so defaults apply downstream.
func intQuery(r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return nil, false
	}
	return &n, true
}

// getTrip handles GET /api/trips/{id}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// updateTrip handles PUT /api/trips/{id}. The body is the full snapshot; the
// path ID wins over any ID in the body.
func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.Trip
	if err := decodeJSON(r, &trip); err != nil {
		writeRequestError(w, "request body must be a trip object")
		return
	}
	trip.ID = chi.URLParam(r, "id")

	updated, err := s.trips.Update(r.Context(), &trip)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// deleteTrip handles DELETE /api/trips/{id}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// updateTripStatus handles PUT /api/trips/{id}/status.
func (s *Server) updateTripStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status domain.TripStatus `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeRequestError(w, "request body must be {\"status\": ...}")
		return
	}

	trip, err := s.trips.UpdateStatus(r.Context(), chi.URLParam(r, "id"), body.Status)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// duplicateTrip handles POST /api/trips/{id}/duplicate.
func (s *Server) duplicateTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Duplicate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// tripSummary is the derived read model for one trip: everything the client
// shows in headers and progress bars, computed from the current snapshot and
// the live rate table.
type tripSummary struct {
	TripID          string       `json:"tripId"`
	DurationDays    int          `json:"durationDays"`
	TotalCost       float64      `json:"totalCost"`
	TotalCostLabel  string       `json:"totalCostLabel"`
	BudgetProgress  float64      `json:"budgetProgress"`
	PackingProgress float64      `json:"packingProgress"`
	ActivityCount   int          `json:"activityCount"`
	Legs            []domain.Leg `json:"legs"`
}

// getTripSummary handles GET /api/trips/{id}/summary.
func (s *Server) getTripSummary(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rates := s.rates.Snapshot()
	total := trip.TotalCost(rates)
	legs := trip.Legs()
	if legs == nil {
		legs = []domain.Leg{}
	}
	respondJSON(w, http.StatusOK, tripSummary{
		TripID:          trip.ID,
		DurationDays:    trip.DurationDays(),
		TotalCost:       total,
		TotalCostLabel:  domain.FormatCost(total, trip.HomeCurrency),
		BudgetProgress:  trip.BudgetProgress(rates),
		PackingProgress: trip.PackingProgress(),
		ActivityCount:   trip.ActivityCount(),
		Legs:            legs,
	})
}
