package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/travelflow/tripflow/internal/pdfgen"
	"github.com/travelflow/tripflow/internal/service"
)

// exportTrip handles GET /api/trips/{id}/export. The trip snapshot is served
// as a downloadable JSON file.
func (s *Server) exportTrip(w http.ResponseWriter, r *http.Request) {
	filename, data, err := s.exporter.Export(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// importTrip handles POST /api/trips/import. The body is a previously
// exported trip file; ?mode=overwrite or ?mode=copy controls what happens
// when the trip ID already exists (the default rejects the import with 409).
func (s *Server) importTrip(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeRequestError(w, "could not read request body")
		return
	}

	var mode service.ImportMode
	switch r.URL.Query().Get("mode") {
	case "":
		mode = service.ImportStrict
	case "overwrite":
		mode = service.ImportOverwrite
	case "copy":
		mode = service.ImportCopy
	default:
		writeRequestError(w, "mode must be \"overwrite\" or \"copy\"")
		return
	}

	trip, err := s.exporter.Import(r.Context(), data, mode)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, trip)
}

// exportTripPDF handles GET /api/trips/{id}/pdf. Renders the itinerary
// document branded with the current agency profile.
func (s *Server) exportTripPDF(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	profile, err := s.agency.Get(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	doc, err := pdfgen.Itinerary(trip, profile, s.rates.Snapshot())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "itinerary_"+trip.ClientName+".pdf"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
