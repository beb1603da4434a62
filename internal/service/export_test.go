package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelflow/tripflow/internal/domain"
	"github.com/travelflow/tripflow/internal/service"
)

func TestExportService_Export(t *testing.T) {
	r := newMemRepo(validTrip())
	svc := service.NewExportService(r)

	filename, data, err := svc.Export(context.Background(), "trip-1")

	require.NoError(t, err)
	assert.Equal(t, "travel_Ada Lovelace.json", filename)

	var round domain.Trip
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Equal(t, "trip-1", round.ID)
	assert.Equal(t, "Portugal Coast", round.TripName)
}

func TestExportService_Export_NotFound(t *testing.T) {
	svc := service.NewExportService(newMemRepo())

	_, _, err := svc.Export(context.Background(), "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportService_Import_NewTrip(t *testing.T) {
	r := newMemRepo()
	svc := service.NewExportService(r)

	data, _ := json.Marshal(validTrip())
	got, err := svc.Import(context.Background(), data, service.ImportStrict)

	require.NoError(t, err)
	assert.Equal(t, "trip-1", got.ID)
	assert.NotZero(t, got.LastModified, "import stamps last-modified")
	assert.Contains(t, got.DayPlans, "2026-06-01", "day plans synced on import")

	stored, err := r.GetByID(context.Background(), "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", stored.ClientName)
}

func TestExportService_Import_NotJSON(t *testing.T) {
	svc := service.NewExportService(newMemRepo())

	_, err := svc.Import(context.Background(), []byte("not json"), service.ImportStrict)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExportService_Import_MissingIdentity(t *testing.T) {
	svc := service.NewExportService(newMemRepo())

	for _, body := range []string{
		`{"clientName":"Ada"}`,
		`{"id":"trip-9"}`,
		`{"id":"  ","clientName":"Ada"}`,
	} {
		_, err := svc.Import(context.Background(), []byte(body), service.ImportStrict)
		assert.ErrorIs(t, err, domain.ErrValidation, "body %s", body)
	}
}

func TestExportService_Import_CollisionStrictIsConflict(t *testing.T) {
	svc := service.NewExportService(newMemRepo(validTrip()))

	data, _ := json.Marshal(validTrip())
	_, err := svc.Import(context.Background(), data, service.ImportStrict)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestExportService_Import_CollisionOverwrite(t *testing.T) {
	r := newMemRepo(validTrip())
	svc := service.NewExportService(r)

	incoming := validTrip()
	incoming.TripName = "Replaced Name"
	data, _ := json.Marshal(incoming)

	got, err := svc.Import(context.Background(), data, service.ImportOverwrite)

	require.NoError(t, err)
	assert.Equal(t, "trip-1", got.ID)

	stored, err := r.GetByID(context.Background(), "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "Replaced Name", stored.TripName)
}

func TestExportService_Import_CollisionCopy(t *testing.T) {
	r := newMemRepo(validTrip())
	svc := service.NewExportService(r)

	data, _ := json.Marshal(validTrip())
	got, err := svc.Import(context.Background(), data, service.ImportCopy)

	require.NoError(t, err)
	assert.NotEqual(t, "trip-1", got.ID, "copy gets a fresh ID")
	assert.Equal(t, "Portugal Coast (Copy)", got.TripName)
	assert.Equal(t, "Ada Lovelace", got.ClientName, "client name is not renamed")

	// original is untouched
	orig, err := r.GetByID(context.Background(), "trip-1")
	require.NoError(t, err)
	assert.Equal(t, "Portugal Coast", orig.TripName)
}

func TestExportService_RoundTripIsLossless(t *testing.T) {
	trip := itineraryTrip()
	trip.PaidItemIds = []string{"s1"}
	r := newMemRepo(trip)
	svc := service.NewExportService(r)

	_, data, err := svc.Export(context.Background(), "trip-1")
	require.NoError(t, err)

	require.NoError(t, r.Delete(context.Background(), "trip-1"))

	got, err := svc.Import(context.Background(), data, service.ImportStrict)
	require.NoError(t, err)
	assert.Equal(t, trip.Stops, got.Stops)
	assert.Equal(t, trip.PaidItemIds, got.PaidItemIds)
	assert.Len(t, got.DayPlans["2026-06-01"].Activities, 1)
}
