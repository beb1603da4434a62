package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/travelflow/tripflow/internal/domain"
)

// addStop handles POST /api/trips/{id}/stops. With ?index= the stop is
// inserted at that 0-based position instead of appended.
func (s *Server) addStop(w http.ResponseWriter, r *http.Request) {
	var stop domain.Stop
	if err := decodeJSON(r, &stop); err != nil {
		writeRequestError(w, "request body must be a stop object")
		return
	}

	tripID := chi.URLParam(r, "id")
	if raw := r.URL.Query().Get("index"); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			writeRequestError(w, "index must be an integer")
			return
		}
		trip, err := s.trips.InsertStop(r.Context(), tripID, index, stop)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, trip)
		return
	}

	trip, err := s.trips.AddStop(r.Context(), tripID, stop)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// updateStop handles PUT /api/trips/{id}/stops/{stopID}.
func (s *Server) updateStop(w http.ResponseWriter, r *http.Request) {
	var stop domain.Stop
	if err := decodeJSON(r, &stop); err != nil {
		writeRequestError(w, "request body must be a stop object")
		return
	}
	stop.ID = chi.URLParam(r, "stopID")

	trip, err := s.trips.UpdateStop(r.Context(), chi.URLParam(r, "id"), stop)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// getTripLegs handles GET /api/trips/{id}/legs: the distance and travel-time
// estimates between consecutive stops.
func (s *Server) getTripLegs(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	legs := trip.Legs()
	if legs == nil {
		legs = []domain.Leg{}
	}
	respondJSON(w, http.StatusOK, legs)
}

// removeStop handles DELETE /api/trips/{id}/stops/{stopID}.
func (s *Server) removeStop(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveStop(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "stopID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// moveStop handles POST /api/trips/{id}/stops/{stopID}/move with body
// {"direction": "up"|"down"}.
func (s *Server) moveStop(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Direction string `json:"direction"`
	}
	if err := decodeJSON(r, &body); err != nil || (body.Direction != "up" && body.Direction != "down") {
		writeRequestError(w, "direction must be \"up\" or \"down\"")
		return
	}

	trip, err := s.trips.MoveStop(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "stopID"), body.Direction == "up")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// addDestination handles POST /api/trips/{id}/destinations.
func (s *Server) addDestination(w http.ResponseWriter, r *http.Request) {
	var dest domain.Destination
	if err := decodeJSON(r, &dest); err != nil {
		writeRequestError(w, "request body must be a destination object")
		return
	}

	trip, err := s.trips.AddDestination(r.Context(), chi.URLParam(r, "id"), dest)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// removeDestination handles DELETE /api/trips/{id}/destinations/{destID}.
func (s *Server) removeDestination(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveDestination(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "destID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// addFlight handles POST /api/trips/{id}/flights.
func (s *Server) addFlight(w http.ResponseWriter, r *http.Request) {
	var flight domain.Flight
	if err := decodeJSON(r, &flight); err != nil {
		writeRequestError(w, "request body must be a flight object")
		return
	}

	trip, err := s.trips.AddFlight(r.Context(), chi.URLParam(r, "id"), flight)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// updateFlight handles PUT /api/trips/{id}/flights/{flightID}.
func (s *Server) updateFlight(w http.ResponseWriter, r *http.Request) {
	var flight domain.Flight
	if err := decodeJSON(r, &flight); err != nil {
		writeRequestError(w, "request body must be a flight object")
		return
	}
	flight.ID = chi.URLParam(r, "flightID")

	trip, err := s.trips.UpdateFlight(r.Context(), chi.URLParam(r, "id"), flight)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// removeFlight handles DELETE /api/trips/{id}/flights/{flightID}.
func (s *Server) removeFlight(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.RemoveFlight(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "flightID"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, trip)
}
