package pdfgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelflow/tripflow/internal/domain"
	"github.com/travelflow/tripflow/internal/pdfgen"
)

func pdfTrip() *domain.Trip {
	return &domain.Trip{
		ID:           "trip-1",
		ClientName:   "Ada Lovelace",
		TripName:     "Portugal Coast",
		HomeCurrency: "EUR",
		TotalBudget:  4000,
		Travelers:    2,
		Stops: []domain.Stop{
			{ID: "s1", Seq: 1, Place: "Lisbon", Start: "2026-06-01", End: "2026-06-04",
				Accommodation: "Hotel Avenida", HotelCost: domain.Cost{Amount: 450, Currency: "EUR"}},
			{ID: "s2", Seq: 2, Place: "Porto", Start: "2026-06-04", End: "2026-06-07"},
		},
		Flights: []domain.Flight{
			{ID: "f1", Airline: "TAP", FlightNumber: "TP123", From: "London", To: "Lisbon",
				Departure: "2026-06-01T08:00:00Z", Arrival: "2026-06-01T10:45:00Z",
				Cost: domain.Cost{Amount: 180, Currency: "EUR"}},
		},
		AgencyNotes: "Client prefers window seats.",
	}
}

func TestItinerary_ProducesPDF(t *testing.T) {
	got, err := pdfgen.Itinerary(pdfTrip(), domain.DefaultAgency(), domain.DefaultRates)

	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]), "output starts with the PDF magic header")
}

func TestItinerary_EmptyTripStillRenders(t *testing.T) {
	trip := &domain.Trip{ID: "t", ClientName: "New Client"}

	got, err := pdfgen.Itinerary(trip, domain.DefaultAgency(), domain.DefaultRates)

	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestItinerary_BadBrandColorFallsBack(t *testing.T) {
	agency := domain.DefaultAgency()
	agency.PrimaryColor = "purple"

	got, err := pdfgen.Itinerary(pdfTrip(), agency, domain.DefaultRates)

	require.NoError(t, err)
	assert.NotEmpty(t, got)
}
