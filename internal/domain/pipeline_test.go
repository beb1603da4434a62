package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelflow/tripflow/internal/domain"
)

func pipelineTrips() []domain.Trip {
	return []domain.Trip{
		{ID: "1", ClientName: "Avery", Status: domain.StatusInquiry, TotalBudget: 1000},
		{ID: "2", ClientName: "Blake", Status: domain.StatusDrafting, TotalBudget: 2000},
		{ID: "3", ClientName: "Casey", Status: domain.StatusProposal, TotalBudget: 3000},
		{ID: "4", ClientName: "Drew", Status: domain.StatusBooked, TotalBudget: 4000},
		{ID: "5", ClientName: "Emery", Status: domain.StatusCompleted, TotalBudget: 5000},
	}
}

func TestPipelineValue_OpenStagesOnly(t *testing.T) {
	// inquiry and completed are excluded
	assert.Equal(t, 9000.0, domain.PipelineValue(pipelineTrips()))
}

func TestGroupByStage_FixedOrderAndTotals(t *testing.T) {
	groups := domain.GroupByStage(pipelineTrips())

	require.Len(t, groups, 5)
	assert.Equal(t, domain.StatusInquiry, groups[0].Stage)
	assert.Equal(t, 1, groups[0].Count)
	assert.Equal(t, 1000.0, groups[0].Value)
	assert.Equal(t, domain.StatusBooked, groups[3].Stage)
	assert.Equal(t, 4000.0, groups[3].Value)
}

func TestGroupByStage_UnknownStatusFallsToInquiry(t *testing.T) {
	groups := domain.GroupByStage([]domain.Trip{{ID: "x", Status: ""}})
	assert.Equal(t, 1, groups[0].Count)
}

func TestUpcomingDepartures_FutureOnlySortedSoonestFirst(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	trips := []domain.Trip{
		{ID: "past", Status: domain.StatusBooked, Stops: []domain.Stop{{ID: "s", Start: "2024-05-01", End: "2024-05-03"}}},
		{ID: "late", ClientName: "B", Status: domain.StatusBooked, Stops: []domain.Stop{{ID: "s", Start: "2024-08-01", End: "2024-08-03"}}},
		{ID: "soon", ClientName: "A", Status: domain.StatusProposal, Flights: []domain.Flight{{ID: "f", Departure: "2024-06-15T09:30:00Z"}}},
		{ID: "done", Status: domain.StatusCompleted, Stops: []domain.Stop{{ID: "s", Start: "2024-07-01", End: "2024-07-03"}}},
		{ID: "undated", Status: domain.StatusInquiry},
	}

	got := domain.UpcomingDepartures(trips, now)

	require.Len(t, got, 2)
	assert.Equal(t, "soon", got[0].TripID)
	assert.Equal(t, "2024-06-15", got[0].Date)
	assert.Equal(t, "late", got[1].TripID)
}

func TestUpcomingDepartures_EarliestOfStopsAndFlights(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	trips := []domain.Trip{{
		ID:      "t",
		Status:  domain.StatusBooked,
		Stops:   []domain.Stop{{ID: "s", Start: "2024-03-10", End: "2024-03-12"}},
		Flights: []domain.Flight{{ID: "f", Departure: "2024-03-08T07:00:00Z"}},
	}}

	got := domain.UpcomingDepartures(trips, now)

	require.Len(t, got, 1)
	assert.Equal(t, "2024-03-08", got[0].Date)
}

func TestFilterTrips_MatchesClientOrTripName(t *testing.T) {
	trips := []domain.Trip{
		{ID: "1", ClientName: "Jordan Miles", TripName: "Italy Honeymoon"},
		{ID: "2", ClientName: "Sam Ko", TripName: "Japan Spring"},
	}

	assert.Len(t, domain.FilterTrips(trips, "jordan"), 1)
	assert.Len(t, domain.FilterTrips(trips, "SPRING"), 1)
	assert.Len(t, domain.FilterTrips(trips, ""), 2)
	assert.Empty(t, domain.FilterTrips(trips, "zanzibar"))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, domain.ValidStatus(domain.StatusBooked))
	assert.False(t, domain.ValidStatus("archived"))
}
