package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelflow/tripflow/internal/domain"
	"github.com/travelflow/tripflow/internal/service"
)

func TestTripService_Expenses_AddUpdateRemove(t *testing.T) {
	svc := service.NewTripService(newMemRepo(validTrip()))
	ctx := context.Background()

	got, err := svc.AddExpense(ctx, "trip-1", domain.Expense{Description: "Taxi", Amount: 20})
	require.NoError(t, err)
	require.Len(t, got.Expenses, 1)
	expID := got.Expenses[0].ID
	assert.Equal(t, "EUR", got.Expenses[0].Currency, "missing currency defaults to reference")

	got, err = svc.UpdateExpense(ctx, "trip-1", domain.Expense{ID: expID, Description: "Taxi", Amount: 25, Currency: "EUR"})
	require.NoError(t, err)
	assert.Equal(t, 25.0, got.Expenses[0].Amount)

	got, err = svc.RemoveExpense(ctx, "trip-1", expID)
	require.NoError(t, err)
	assert.Empty(t, got.Expenses)
}

func TestTripService_AddExpense_MissingDescription(t *testing.T) {
	svc := service.NewTripService(newMemRepo(validTrip()))

	_, err := svc.AddExpense(context.Background(), "trip-1", domain.Expense{Amount: 20})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_TogglePaid_Twice(t *testing.T) {
	svc := service.NewTripService(newMemRepo(validTrip()))
	ctx := context.Background()

	got, err := svc.TogglePaid(ctx, "trip-1", "stop-1")
	require.NoError(t, err)
	assert.Contains(t, got.PaidItemIds, "stop-1")

	got, err = svc.TogglePaid(ctx, "trip-1", "stop-1")
	require.NoError(t, err)
	assert.NotContains(t, got.PaidItemIds, "stop-1")
}

func TestTripService_Packing_TemplateAndToggle(t *testing.T) {
	svc := service.NewTripService(newMemRepo(validTrip()))
	ctx := context.Background()

	got, err := svc.ApplyPackingTemplate(ctx, "trip-1", "Basic")
	require.NoError(t, err)
	require.Len(t, got.PackingList, 2)
	assert.NotEmpty(t, got.PackingList[0].ID, "template items get fresh ids")
	assert.NotEqual(t, got.PackingList[0].ID, got.PackingList[1].ID)

	itemID := got.PackingList[0].ID
	got, err = svc.TogglePacked(ctx, "trip-1", itemID)
	require.NoError(t, err)
	assert.True(t, got.PackingList[0].Packed)

	got, err = svc.RemovePackingItem(ctx, "trip-1", itemID)
	require.NoError(t, err)
	assert.Len(t, got.PackingList, 1)
}

func TestTripService_ApplyPackingTemplate_Unknown(t *testing.T) {
	svc := service.NewTripService(newMemRepo(validTrip()))

	_, err := svc.ApplyPackingTemplate(context.Background(), "trip-1", "Arctic")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Links_AddRemove(t *testing.T) {
	svc := service.NewTripService(newMemRepo(validTrip()))
	ctx := context.Background()

	got, err := svc.AddLink(ctx, "trip-1", domain.LinkItem{Title: "Hotel", URL: "https://example.com"})
	require.NoError(t, err)
	require.Len(t, got.Links, 1)

	got, err = svc.RemoveLink(ctx, "trip-1", got.Links[0].ID)
	require.NoError(t, err)
	assert.Empty(t, got.Links)
}

func TestTripService_Tasks_AddToggleRemove(t *testing.T) {
	svc := service.NewTripService(newMemRepo(validTrip()))
	ctx := context.Background()

	got, err := svc.AddTask(ctx, "trip-1", domain.AgencyTask{Text: "Send proposal"})
	require.NoError(t, err)
	require.Len(t, got.AgencyTasks, 1)
	taskID := got.AgencyTasks[0].ID

	got, err = svc.ToggleTask(ctx, "trip-1", taskID)
	require.NoError(t, err)
	assert.True(t, got.AgencyTasks[0].Completed)

	got, err = svc.RemoveTask(ctx, "trip-1", taskID)
	require.NoError(t, err)
	assert.Empty(t, got.AgencyTasks)
}

func TestTripService_ToggleTask_NotFound(t *testing.T) {
	svc := service.NewTripService(newMemRepo(validTrip()))

	_, err := svc.ToggleTask(context.Background(), "trip-1", "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
