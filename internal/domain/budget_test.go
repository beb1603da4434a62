package domain_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelflow/tripflow/internal/domain"
)

func budgetTrip() *domain.Trip {
	stop := newStop("Lisbon", "2024-06-01", "2024-06-02")
	stop.HotelCost = domain.Cost{Amount: 200, Currency: "EUR"}
	stop.TravelToStop = &domain.TravelDetails{Type: domain.TravelTrain, Cost: domain.Cost{Amount: 50, Currency: "EUR"}}

	trip := newTrip(stop)
	trip.Flights = []domain.Flight{
		{ID: uuid.NewString(), Airline: "TAP", Cost: domain.Cost{Amount: 108, Currency: "USD"}},
	}
	trip.AddActivity("2024-06-01", domain.Activity{
		ID: uuid.NewString(), Name: "Tram 28", TimeBlock: domain.BlockMorning,
		Status: domain.ActivityIdea, Cost: domain.Cost{Amount: 30, Currency: "EUR"},
	})
	return trip
}

func TestTotalCost_SumsAllPlannedCosts(t *testing.T) {
	trip := budgetTrip()
	rates := map[string]float64{"EUR": 1, "USD": 1.08}

	// 200 hotel + 50 train + 108 USD -> 100 EUR flight + 30 activity
	assert.InDelta(t, 380, trip.TotalCost(rates), 1e-9)
}

func TestTotalCost_OrderIndependent(t *testing.T) {
	trip := budgetTrip()
	rates := domain.DefaultRates
	want := trip.TotalCost(rates)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		rng.Shuffle(len(trip.Stops), func(a, b int) {
			trip.Stops[a], trip.Stops[b] = trip.Stops[b], trip.Stops[a]
		})
		rng.Shuffle(len(trip.Flights), func(a, b int) {
			trip.Flights[a], trip.Flights[b] = trip.Flights[b], trip.Flights[a]
		})
		assert.InDelta(t, want, trip.TotalCost(rates), 1e-9)
	}
}

func TestTotalCost_MissingCostsContributeZero(t *testing.T) {
	trip := newTrip(newStop("Nowhere", "", ""))
	trip.Flights = []domain.Flight{{ID: "f1"}}
	assert.Equal(t, 0.0, trip.TotalCost(domain.DefaultRates))
}

func TestBudgetProgress_ZeroBudgetIsZeroPercent(t *testing.T) {
	trip := budgetTrip()
	trip.TotalBudget = 0
	assert.Equal(t, 0.0, trip.BudgetProgress(domain.DefaultRates))
}

func TestBudgetProgress_Percentage(t *testing.T) {
	trip := budgetTrip()
	trip.TotalBudget = 760
	rates := map[string]float64{"EUR": 1, "USD": 1.08}
	assert.InDelta(t, 50, trip.BudgetProgress(rates), 1e-9)
}

func TestTogglePaid_DoubleToggleRestoresMembership(t *testing.T) {
	trip := budgetTrip()
	flightID := trip.Flights[0].ID

	require.False(t, trip.IsPaid(flightID))

	trip.TogglePaid(flightID)
	assert.True(t, trip.IsPaid(flightID))

	trip.TogglePaid(flightID)
	assert.False(t, trip.IsPaid(flightID))
	assert.Empty(t, trip.PaidItemIds)
}

func TestDurationDays_SpansEarliestToLatest(t *testing.T) {
	trip := newTrip(
		newStop("Lisbon", "2024-06-01", "2024-06-03"),
		newStop("Porto", "2024-06-03", "2024-06-07"),
	)
	assert.Equal(t, 7, trip.DurationDays())
}

func TestDurationDays_IgnoresUndatedStops(t *testing.T) {
	trip := newTrip(newStop("Lisbon", "2024-06-01", "2024-06-02"), newStop("TBD", "", ""))
	assert.Equal(t, 2, trip.DurationDays())
}

func TestDurationDays_NoDatedStops(t *testing.T) {
	trip := newTrip(newStop("TBD", "", ""))
	assert.Equal(t, 0, trip.DurationDays())
}

func TestPackingProgress(t *testing.T) {
	trip := newTrip()
	assert.Equal(t, 0.0, trip.PackingProgress())

	trip.PackingList = []domain.PackingItem{
		{ID: "1", Text: "Passport", Packed: true},
		{ID: "2", Text: "Charger", Packed: false},
	}
	assert.InDelta(t, 50, trip.PackingProgress(), 1e-9)
}
