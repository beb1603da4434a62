package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelflow/tripflow/internal/domain"
	"github.com/travelflow/tripflow/internal/service"
)

func itineraryTrip() *domain.Trip {
	return &domain.Trip{
		ID:         "trip-1",
		ClientName: "Ada Lovelace",
		Status:     domain.StatusDrafting,
		Stops: []domain.Stop{
			{ID: "s1", Seq: 1, Place: "Lisbon", Start: "2026-06-01", End: "2026-06-02"},
			{ID: "s2", Seq: 2, Place: "Porto", Start: "2026-06-02", End: "2026-06-04"},
		},
		DayPlans: map[string]domain.DayPlan{
			"2026-06-01": {Date: "2026-06-01", StopID: "s1", Status: domain.DayDefault, Activities: []domain.Activity{
				{ID: "a1", Name: "Tram 28", TimeBlock: domain.BlockMorning, Status: domain.ActivityIdea},
			}},
			"2026-06-02": {Date: "2026-06-02", StopID: "s1", Status: domain.DayDefault, Activities: []domain.Activity{}},
		},
	}
}

func TestTripService_AddStop_AppendsAndSyncs(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	got, err := svc.AddStop(context.Background(), "trip-1", domain.Stop{
		Place: "Faro", Start: "2026-06-04", End: "2026-06-05",
	})

	require.NoError(t, err)
	require.Len(t, got.Stops, 3)
	assert.Equal(t, 3, got.Stops[2].Seq)
	assert.NotEmpty(t, got.Stops[2].ID, "missing stop ID should be generated")
	assert.Contains(t, got.DayPlans, "2026-06-05", "new dates get day plans")
}

func TestTripService_AddStop_MissingPlace(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	_, err := svc.AddStop(context.Background(), "trip-1", domain.Stop{Place: " "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_InsertStop_InheritsPreviousDeparture(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	got, err := svc.InsertStop(context.Background(), "trip-1", 1, domain.Stop{Place: "Coimbra"})

	require.NoError(t, err)
	require.Len(t, got.Stops, 3)
	assert.Equal(t, "Coimbra", got.Stops[1].Place)
	assert.Equal(t, "2026-06-02", got.Stops[1].Start, "inherits previous stop's departure date")
	assert.Equal(t, []int{1, 2, 3}, []int{got.Stops[0].Seq, got.Stops[1].Seq, got.Stops[2].Seq})
}

func TestTripService_RemoveStop_KeepsDayPlans(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	got, err := svc.RemoveStop(context.Background(), "trip-1", "s1")

	require.NoError(t, err)
	require.Len(t, got.Stops, 1)
	assert.Equal(t, 1, got.Stops[0].Seq, "remaining stop is renumbered")
	assert.Contains(t, got.DayPlans, "2026-06-01", "day plans survive stop removal")
}

func TestTripService_RemoveStop_NotFound(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	_, err := svc.RemoveStop(context.Background(), "trip-1", "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_MoveStop_SwapsNeighbours(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	got, err := svc.MoveStop(context.Background(), "trip-1", "s2", true)

	require.NoError(t, err)
	assert.Equal(t, "Porto", got.Stops[0].Place)
	assert.Equal(t, 1, got.Stops[0].Seq)
}

func TestTripService_MoveStop_BoundaryIsNoOp(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	got, err := svc.MoveStop(context.Background(), "trip-1", "s1", true)

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Stops[0].Place)
}

func TestTripService_PruneDayPlans(t *testing.T) {
	trip := itineraryTrip()
	trip.DayPlans["2030-01-01"] = domain.DayPlan{Date: "2030-01-01", StopID: "gone"}
	svc := service.NewTripService(newMemRepo(trip))

	got, err := svc.PruneDayPlans(context.Background(), "trip-1")

	require.NoError(t, err)
	assert.NotContains(t, got.DayPlans, "2030-01-01")
	assert.Contains(t, got.DayPlans, "2026-06-01")
}

func TestTripService_SetDayStatus(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	got, err := svc.SetDayStatus(context.Background(), "trip-1", "2026-06-02", domain.DayRest)

	require.NoError(t, err)
	assert.Equal(t, domain.DayRest, got.DayPlans["2026-06-02"].Status)
}

func TestTripService_SetDayStatus_UnknownDate(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	_, err := svc.SetDayStatus(context.Background(), "trip-1", "1999-01-01", domain.DayRest)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_AddActivity_FillsDefaults(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	got, err := svc.AddActivity(context.Background(), "trip-1", "2026-06-02", domain.Activity{Name: "Port tasting"})

	require.NoError(t, err)
	acts := got.DayPlans["2026-06-02"].Activities
	require.Len(t, acts, 1)
	assert.NotEmpty(t, acts[0].ID)
	assert.Equal(t, domain.BlockUnplanned, acts[0].TimeBlock)
	assert.Equal(t, domain.ActivityIdea, acts[0].Status)
}

func TestTripService_TransferActivity(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	got, err := svc.TransferActivity(context.Background(), "trip-1", "a1", "2026-06-02", domain.BlockEvening)

	require.NoError(t, err)
	assert.Empty(t, got.DayPlans["2026-06-01"].Activities)
	moved := got.DayPlans["2026-06-02"].Activities
	require.Len(t, moved, 1)
	assert.Equal(t, domain.BlockEvening, moved[0].TimeBlock)
}

func TestTripService_AdvanceActivity(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))

	got, err := svc.AdvanceActivity(context.Background(), "trip-1", "a1")

	require.NoError(t, err)
	assert.Equal(t, domain.ActivityBooked, got.DayPlans["2026-06-01"].Activities[0].Status)
}

func TestTripService_Flights_AddUpdateRemove(t *testing.T) {
	svc := service.NewTripService(newMemRepo(itineraryTrip()))
	ctx := context.Background()

	got, err := svc.AddFlight(ctx, "trip-1", domain.Flight{Airline: "TAP", FlightNumber: "TP123"})
	require.NoError(t, err)
	require.Len(t, got.Flights, 1)
	flightID := got.Flights[0].ID
	require.NotEmpty(t, flightID)

	got, err = svc.UpdateFlight(ctx, "trip-1", domain.Flight{ID: flightID, Airline: "TAP", FlightNumber: "TP456"})
	require.NoError(t, err)
	assert.Equal(t, "TP456", got.Flights[0].FlightNumber)

	got, err = svc.RemoveFlight(ctx, "trip-1", flightID)
	require.NoError(t, err)
	assert.Empty(t, got.Flights)
}

func TestTripService_AddDestination_RejectsAlias(t *testing.T) {
	trip := itineraryTrip()
	trip.Destinations = []domain.Destination{{ID: "d1", Name: "USA"}}
	svc := service.NewTripService(newMemRepo(trip))

	_, err := svc.AddDestination(context.Background(), "trip-1", domain.Destination{Name: "United States of America"})

	assert.ErrorIs(t, err, domain.ErrConflict)
}
