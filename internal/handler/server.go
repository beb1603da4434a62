// Package handler implements the HTTP handlers for the TripFlow API.
// All handlers are methods on Server; methods are split into domain-specific
// files (trip.go, stop.go, dashboard.go, etc.) but share the same Server
// struct so they can access its dependencies.
//
// Interfaces for the service layer and the external collaborators are
// declared here, in the consumer package, so handler tests can inject mocks
// without touching the database or the network.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/travelflow/tripflow/internal/assist"
	"github.com/travelflow/tripflow/internal/domain"
	"github.com/travelflow/tripflow/internal/geocode"
	"github.com/travelflow/tripflow/internal/service"
	"github.com/travelflow/tripflow/internal/weather"
)

// TripServicer defines the trip operations the handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	GetByID(ctx context.Context, id string) (*domain.Trip, error)
	List(ctx context.Context, query string, page domain.PaginationParams) ([]*domain.Trip, error)
	Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status domain.TripStatus) (*domain.Trip, error)
	Duplicate(ctx context.Context, id string) (*domain.Trip, error)

	AddStop(ctx context.Context, tripID string, stop domain.Stop) (*domain.Trip, error)
	InsertStop(ctx context.Context, tripID string, index int, stop domain.Stop) (*domain.Trip, error)
	UpdateStop(ctx context.Context, tripID string, stop domain.Stop) (*domain.Trip, error)
	RemoveStop(ctx context.Context, tripID, stopID string) (*domain.Trip, error)
	MoveStop(ctx context.Context, tripID, stopID string, up bool) (*domain.Trip, error)
	PruneDayPlans(ctx context.Context, tripID string) (*domain.Trip, error)
	SetDayStatus(ctx context.Context, tripID, date string, status domain.DayStatus) (*domain.Trip, error)
	AddActivity(ctx context.Context, tripID, date string, act domain.Activity) (*domain.Trip, error)
	RemoveActivity(ctx context.Context, tripID, activityID string) (*domain.Trip, error)
	AdvanceActivity(ctx context.Context, tripID, activityID string) (*domain.Trip, error)
	TransferActivity(ctx context.Context, tripID, activityID, date string, block domain.TimeBlock) (*domain.Trip, error)
	AddFlight(ctx context.Context, tripID string, flight domain.Flight) (*domain.Trip, error)
	UpdateFlight(ctx context.Context, tripID string, flight domain.Flight) (*domain.Trip, error)
	RemoveFlight(ctx context.Context, tripID, flightID string) (*domain.Trip, error)
	AddDestination(ctx context.Context, tripID string, dest domain.Destination) (*domain.Trip, error)
	RemoveDestination(ctx context.Context, tripID, destID string) (*domain.Trip, error)

	AddExpense(ctx context.Context, tripID string, exp domain.Expense) (*domain.Trip, error)
	UpdateExpense(ctx context.Context, tripID string, exp domain.Expense) (*domain.Trip, error)
	RemoveExpense(ctx context.Context, tripID, expenseID string) (*domain.Trip, error)
	TogglePaid(ctx context.Context, tripID, itemID string) (*domain.Trip, error)
	AddPackingItem(ctx context.Context, tripID string, item domain.PackingItem) (*domain.Trip, error)
	ApplyPackingTemplate(ctx context.Context, tripID, template string) (*domain.Trip, error)
	TogglePacked(ctx context.Context, tripID, itemID string) (*domain.Trip, error)
	RemovePackingItem(ctx context.Context, tripID, itemID string) (*domain.Trip, error)
	AddLink(ctx context.Context, tripID string, link domain.LinkItem) (*domain.Trip, error)
	RemoveLink(ctx context.Context, tripID, linkID string) (*domain.Trip, error)
	AddTask(ctx context.Context, tripID string, task domain.AgencyTask) (*domain.Trip, error)
	ToggleTask(ctx context.Context, tripID, taskID string) (*domain.Trip, error)
	RemoveTask(ctx context.Context, tripID, taskID string) (*domain.Trip, error)
}

// DashboardServicer provides the derived CRM views.
type DashboardServicer interface {
	Pipeline(ctx context.Context) (service.Pipeline, error)
	Departures(ctx context.Context) ([]domain.Departure, error)
}

// ExportServicer moves trips in and out as JSON files.
type ExportServicer interface {
	Export(ctx context.Context, id string) (string, []byte, error)
	Import(ctx context.Context, data []byte, mode service.ImportMode) (*domain.Trip, error)
}

// AgencyServicer manages the agency profile.
type AgencyServicer interface {
	Get(ctx context.Context) (domain.AgencyProfile, error)
	Update(ctx context.Context, profile domain.AgencyProfile) (domain.AgencyProfile, error)
}

// RatesServicer exposes the live exchange-rate table.
type RatesServicer interface {
	Snapshot() map[string]float64
	Refresh(ctx context.Context) bool
}

// Geocoder resolves place names to coordinates.
type Geocoder interface {
	Search(ctx context.Context, query string, limit int, countriesOnly bool) ([]geocode.Candidate, error)
}

// Forecaster fetches daily weather for coordinates.
type Forecaster interface {
	Forecast(ctx context.Context, lat, lng float64) ([]weather.Day, error)
}

// Assistant is the generative suggestion client. All methods degrade to
// empty results when the assistant is unconfigured.
type Assistant interface {
	Enabled() bool
	SuggestPacking(ctx context.Context, location, month string) ([]assist.PackingGroup, error)
	SuggestNextStop(ctx context.Context, stops []domain.Stop) (*assist.StopSuggestion, error)
	SuggestTasks(ctx context.Context, trip *domain.Trip) ([]string, error)
	Phrases(ctx context.Context, location string) ([]assist.Phrase, error)
	Chat(ctx context.Context, trip *domain.Trip, history []assist.ChatMessage, message string) (string, error)
}

// Server holds every dependency the HTTP layer needs.
type Server struct {
	trips     TripServicer
	dashboard DashboardServicer
	exporter  ExportServicer
	agency    AgencyServicer
	rates     RatesServicer
	geocoder  Geocoder
	weather   Forecaster
	assistant Assistant
	log       *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	trips TripServicer,
	dashboard DashboardServicer,
	exporter ExportServicer,
	agency AgencyServicer,
	rates RatesServicer,
	geocoder Geocoder,
	forecaster Forecaster,
	assistant Assistant,
	log *slog.Logger,
) *Server {
	return &Server{
		trips:     trips,
		dashboard: dashboard,
		exporter:  exporter,
		agency:    agency,
		rates:     rates,
		geocoder:  geocoder,
		weather:   forecaster,
		assistant: assistant,
		log:       log,
	}
}

// Routes mounts every endpoint on a chi router. Middleware is applied by the
// caller (cmd/api) so tests can exercise routes without the full stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", s.getOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Get("/currencies", s.listCurrencies)
		r.Get("/rates", s.getRates)
		r.Post("/rates/refresh", s.refreshRates)
		r.Get("/geocode", s.searchPlaces)
		r.Get("/weather", s.getForecast)
		r.Get("/assist/phrases", s.assistPhrases)
		r.Post("/assist/chat", s.assistChat)

		r.Get("/agency", s.getAgency)
		r.Put("/agency", s.updateAgency)

		r.Get("/dashboard/pipeline", s.getPipeline)
		r.Get("/dashboard/departures", s.getDepartures)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.listTrips)
			r.Post("/", s.createTrip)
			r.Post("/import", s.importTrip)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.getTrip)
				r.Put("/", s.updateTrip)
				r.Delete("/", s.deleteTrip)
				r.Put("/status", s.updateTripStatus)
				r.Post("/duplicate", s.duplicateTrip)
				r.Get("/summary", s.getTripSummary)
				r.Get("/legs", s.getTripLegs)
				r.Get("/export", s.exportTrip)
				r.Get("/pdf", s.exportTripPDF)
				r.Get("/weather", s.getTripWeather)

				r.Post("/stops", s.addStop)
				r.Put("/stops/{stopID}", s.updateStop)
				r.Delete("/stops/{stopID}", s.removeStop)
				r.Post("/stops/{stopID}/move", s.moveStop)

				r.Post("/destinations", s.addDestination)
				r.Delete("/destinations/{destID}", s.removeDestination)

				r.Post("/flights", s.addFlight)
				r.Put("/flights/{flightID}", s.updateFlight)
				r.Delete("/flights/{flightID}", s.removeFlight)

				r.Post("/days/prune", s.pruneDayPlans)
				r.Put("/days/{date}/status", s.setDayStatus)
				r.Post("/days/{date}/activities", s.addActivity)
				r.Delete("/activities/{activityID}", s.removeActivity)
				r.Post("/activities/{activityID}/advance", s.advanceActivity)
				r.Post("/activities/{activityID}/transfer", s.transferActivity)

				r.Post("/expenses", s.addExpense)
				r.Put("/expenses/{expenseID}", s.updateExpense)
				r.Delete("/expenses/{expenseID}", s.removeExpense)
				r.Post("/paid/{itemID}", s.togglePaid)

				r.Post("/packing", s.addPackingItem)
				r.Post("/packing/template", s.applyPackingTemplate)
				r.Post("/packing/{itemID}/toggle", s.togglePacked)
				r.Delete("/packing/{itemID}", s.removePackingItem)

				r.Post("/links", s.addLink)
				r.Delete("/links/{linkID}", s.removeLink)

				r.Post("/tasks", s.addTask)
				r.Post("/tasks/{taskID}/toggle", s.toggleTask)
				r.Delete("/tasks/{taskID}", s.removeTask)

				r.Post("/assist/packing", s.assistPacking)
				r.Post("/assist/next-stop", s.assistNextStop)
				r.Post("/assist/tasks", s.assistTasks)
			})
		})
	})

	return r
}
