package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/travelflow/tripflow/internal/domain"
)

// Itinerary operations: stops, flights, day plans, and activities. Each one
// is a snapshot mutation on the owning trip; the full updated trip is
// returned so clients see renumbered stops and freshly synced day plans
// without a second fetch.

// AddStop appends a stop to the end of a trip's route.
func (s *TripService) AddStop(ctx context.Context, tripID string, stop domain.Stop) (*domain.Trip, error) {
	if err := validateStop(&stop); err != nil {
		return nil, err
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		t.AddStop(stop)
		return nil
	})
}

// InsertStop inserts a stop at a 0-based position, shifting later stops down.
func (s *TripService) InsertStop(ctx context.Context, tripID string, index int, stop domain.Stop) (*domain.Trip, error) {
	if err := validateStop(&stop); err != nil {
		return nil, err
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		t.InsertStopAt(index, stop)
		return nil
	})
}

// UpdateStop replaces an existing stop in place, keeping its position.
func (s *TripService) UpdateStop(ctx context.Context, tripID string, stop domain.Stop) (*domain.Trip, error) {
	if err := validateStop(&stop); err != nil {
		return nil, err
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		if !t.UpdateStop(stop) {
			return fmt.Errorf("stop %s: %w", stop.ID, domain.ErrNotFound)
		}
		return nil
	})
}

// RemoveStop deletes a stop from the route. Day plans for its dates are kept.
func (s *TripService) RemoveStop(ctx context.Context, tripID, stopID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		if !t.RemoveStop(stopID) {
			return fmt.Errorf("stop %s: %w", stopID, domain.ErrNotFound)
		}
		return nil
	})
}

// MoveStop shifts a stop one position up or down the route. Moves past either
// end are accepted and do nothing.
func (s *TripService) MoveStop(ctx context.Context, tripID, stopID string, up bool) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		i := t.StopIndex(stopID)
		if i < 0 {
			return fmt.Errorf("stop %s: %w", stopID, domain.ErrNotFound)
		}
		t.MoveStop(i, up)
		return nil
	})
}

// PruneDayPlans removes day plans whose dates no longer belong to any stop.
// Explicit cleanup only; normal edits keep orphaned days around.
func (s *TripService) PruneDayPlans(ctx context.Context, tripID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		t.PruneOrphanDayPlans()
		return nil
	})
}

// SetDayStatus marks a planned day as default, complete, or rest.
func (s *TripService) SetDayStatus(ctx context.Context, tripID, date string, status domain.DayStatus) (*domain.Trip, error) {
	switch status {
	case domain.DayDefault, domain.DayComplete, domain.DayRest:
	default:
		return nil, fmt.Errorf("%w: unknown day status %q", domain.ErrValidation, status)
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		plan, ok := t.DayPlans[date]
		if !ok {
			return fmt.Errorf("day %s: %w", date, domain.ErrNotFound)
		}
		plan.Status = status
		t.DayPlans[date] = plan
		return nil
	})
}

// AddActivity appends an activity to the day plan for a date.
func (s *TripService) AddActivity(ctx context.Context, tripID, date string, act domain.Activity) (*domain.Trip, error) {
	if strings.TrimSpace(act.Name) == "" {
		return nil, fmt.Errorf("%w: activity name is required", domain.ErrValidation)
	}
	if act.ID == "" {
		act.ID = uuid.NewString()
	}
	if act.TimeBlock == "" {
		act.TimeBlock = domain.BlockUnplanned
	}
	if act.Status == "" {
		act.Status = domain.ActivityIdea
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		if !t.AddActivity(date, act) {
			return fmt.Errorf("day %s: %w", date, domain.ErrNotFound)
		}
		return nil
	})
}

// RemoveActivity deletes an activity from whichever day holds it.
func (s *TripService) RemoveActivity(ctx context.Context, tripID, activityID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		if !t.RemoveActivity(activityID) {
			return fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
		}
		return nil
	})
}

// AdvanceActivity cycles an activity's status one step.
func (s *TripService) AdvanceActivity(ctx context.Context, tripID, activityID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		if !t.AdvanceActivity(activityID) {
			return fmt.Errorf("activity %s: %w", activityID, domain.ErrNotFound)
		}
		return nil
	})
}

// TransferActivity moves an activity to another day and time block.
func (s *TripService) TransferActivity(ctx context.Context, tripID, activityID, date string, block domain.TimeBlock) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		if !t.TransferActivity(activityID, date, block) {
			return fmt.Errorf("activity %s to %s: %w", activityID, date, domain.ErrNotFound)
		}
		return nil
	})
}

// AddFlight records a flight booking on a trip.
func (s *TripService) AddFlight(ctx context.Context, tripID string, flight domain.Flight) (*domain.Trip, error) {
	if flight.ID == "" {
		flight.ID = uuid.NewString()
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		t.Flights = append(t.Flights, flight)
		return nil
	})
}

// UpdateFlight replaces a flight by ID.
func (s *TripService) UpdateFlight(ctx context.Context, tripID string, flight domain.Flight) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		for i := range t.Flights {
			if t.Flights[i].ID == flight.ID {
				t.Flights[i] = flight
				return nil
			}
		}
		return fmt.Errorf("flight %s: %w", flight.ID, domain.ErrNotFound)
	})
}

// RemoveFlight deletes a flight booking.
func (s *TripService) RemoveFlight(ctx context.Context, tripID, flightID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		for i := range t.Flights {
			if t.Flights[i].ID == flightID {
				t.Flights = append(t.Flights[:i], t.Flights[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("flight %s: %w", flightID, domain.ErrNotFound)
	})
}

// AddDestination adds a wizard destination, rejecting duplicates by
// normalized name.
func (s *TripService) AddDestination(ctx context.Context, tripID string, dest domain.Destination) (*domain.Trip, error) {
	if strings.TrimSpace(dest.Name) == "" {
		return nil, fmt.Errorf("%w: destination name is required", domain.ErrValidation)
	}
	if dest.ID == "" {
		dest.ID = uuid.NewString()
	}
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		if !t.AddDestination(dest) {
			return fmt.Errorf("%w: destination %q already present", domain.ErrConflict, dest.Name)
		}
		return nil
	})
}

// RemoveDestination deletes a destination by ID.
func (s *TripService) RemoveDestination(ctx context.Context, tripID, destID string) (*domain.Trip, error) {
	return s.mutate(ctx, tripID, func(t *domain.Trip) error {
		t.RemoveDestination(destID)
		return nil
	})
}

func validateStop(stop *domain.Stop) error {
	if strings.TrimSpace(stop.Place) == "" {
		return fmt.Errorf("%w: stop place is required", domain.ErrValidation)
	}
	if stop.Start != "" && stop.End != "" && stop.End < stop.Start {
		return fmt.Errorf("%w: stop %q ends before it starts", domain.ErrValidation, stop.Place)
	}
	if stop.ID == "" {
		stop.ID = uuid.NewString()
	}
	return nil
}
