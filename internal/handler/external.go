package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/travelflow/tripflow/internal/assist"
	"github.com/travelflow/tripflow/internal/domain"
	"github.com/travelflow/tripflow/internal/weather"
)

// listCurrencies handles GET /api/currencies.
func (s *Server) listCurrencies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Currencies)
}

// ratesResponse is the payload of GET /api/rates. Rates are expressed as
// units per one base-currency unit.
type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// getRates handles GET /api/rates.
func (s *Server) getRates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, ratesResponse{
		Base:  domain.ReferenceCurrency,
		Rates: s.rates.Snapshot(),
	})
}

// refreshRates handles POST /api/rates/refresh. A failed upstream fetch is
// not an error; the response reports whether the table actually updated.
func (s *Server) refreshRates(w http.ResponseWriter, r *http.Request) {
	refreshed := s.rates.Refresh(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{
		"refreshed": refreshed,
		"rates":     s.rates.Snapshot(),
	})
}

// searchPlaces handles GET /api/geocode?q=...&limit=...&countries=true.
func (s *Server) searchPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeRequestError(w, "q is required")
		return
	}

	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeRequestError(w, "limit must be a positive integer")
			return
		}
		limit = n
	}
	countriesOnly := r.URL.Query().Get("countries") == "true"

	candidates, err := s.geocoder.Search(r.Context(), query, limit, countriesOnly)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, candidates)
}

// getForecast handles GET /api/weather?lat=...&lng=...
func (s *Server) getForecast(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeRequestError(w, "lat and lng must be decimal coordinates")
		return
	}

	days, err := s.weather.Forecast(r.Context(), lat, lng)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, days)
}

// stopWeather pairs a stop with its forecast.
type stopWeather struct {
	StopID string        `json:"stopId"`
	Place  string        `json:"place"`
	Days   []weather.Day `json:"days"`
}

// getTripWeather handles GET /api/trips/{id}/weather. Forecasts for every
// geocoded stop are fetched concurrently; one upstream failure fails the
// whole request rather than returning a partial table.
func (s *Server) getTripWeather(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	results := make([]stopWeather, 0, len(trip.Stops))
	coords := make([][2]float64, 0, len(trip.Stops))
	for _, stop := range trip.Stops {
		if stop.Lat == 0 && stop.Lng == 0 {
			continue
		}
		results = append(results, stopWeather{StopID: stop.ID, Place: stop.Place})
		coords = append(coords, [2]float64{stop.Lat, stop.Lng})
	}

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(4)
	for i := range results {
		i := i
		g.Go(func() error {
			days, err := s.weather.Forecast(ctx, coords[i][0], coords[i][1])
			if err != nil {
				return err
			}
			results[i].Days = days
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, results)
}

// writeAssistUnavailable reports that no generative model is configured.
func writeAssistUnavailable(w http.ResponseWriter) {
	respondJSON(w, http.StatusServiceUnavailable, ErrorResponse{
		Error: ErrorDetail{Code: "assist_unavailable", Message: "no assistant model is configured"},
	})
}

// assistPacking handles POST /api/trips/{id}/assist/packing with body
// {"location": "...", "month": "..."}.
func (s *Server) assistPacking(w http.ResponseWriter, r *http.Request) {
	if !s.assistant.Enabled() {
		writeAssistUnavailable(w)
		return
	}
	var body struct {
		Location string `json:"location"`
		Month    string `json:"month"`
	}
	if err := decodeJSON(r, &body); err != nil || body.Location == "" {
		writeRequestError(w, "request body must carry a location")
		return
	}

	groups, err := s.assistant.SuggestPacking(r.Context(), body.Location, body.Month)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if groups == nil {
		groups = []assist.PackingGroup{}
	}
	respondJSON(w, http.StatusOK, groups)
}

// assistNextStop handles POST /api/trips/{id}/assist/next-stop. Responds
// with null when the model has nothing useful to suggest.
func (s *Server) assistNextStop(w http.ResponseWriter, r *http.Request) {
	if !s.assistant.Enabled() {
		writeAssistUnavailable(w)
		return
	}
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	suggestion, err := s.assistant.SuggestNextStop(r.Context(), trip.Stops)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, suggestion)
}

// assistTasks handles POST /api/trips/{id}/assist/tasks.
func (s *Server) assistTasks(w http.ResponseWriter, r *http.Request) {
	if !s.assistant.Enabled() {
		writeAssistUnavailable(w)
		return
	}
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	tasks, err := s.assistant.SuggestTasks(r.Context(), trip)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if tasks == nil {
		tasks = []string{}
	}
	respondJSON(w, http.StatusOK, map[string][]string{"tasks": tasks})
}

// assistPhrases handles GET /api/assist/phrases?location=...
func (s *Server) assistPhrases(w http.ResponseWriter, r *http.Request) {
	if !s.assistant.Enabled() {
		writeAssistUnavailable(w)
		return
	}
	location := r.URL.Query().Get("location")
	if location == "" {
		writeRequestError(w, "location is required")
		return
	}

	phrases, err := s.assistant.Phrases(r.Context(), location)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if phrases == nil {
		phrases = []assist.Phrase{}
	}
	respondJSON(w, http.StatusOK, phrases)
}

// assistChat handles POST /api/assist/chat with body
// {"tripId": "...", "history": [...], "message": "..."}. tripId is optional;
// when present the trip's route is offered to the model as context.
func (s *Server) assistChat(w http.ResponseWriter, r *http.Request) {
	if !s.assistant.Enabled() {
		writeAssistUnavailable(w)
		return
	}
	var body struct {
		TripID  string               `json:"tripId"`
		History []assist.ChatMessage `json:"history"`
		Message string               `json:"message"`
	}
	if err := decodeJSON(r, &body); err != nil || body.Message == "" {
		writeRequestError(w, "request body must carry a message")
		return
	}

	var trip *domain.Trip
	if body.TripID != "" {
		var err error
		trip, err = s.trips.GetByID(r.Context(), body.TripID)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	reply, err := s.assistant.Chat(r.Context(), trip, body.History, body.Message)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
