// Package service contains the business logic for the TripFlow API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
//
// Every trip mutation follows the same shape: load the snapshot, apply a
// domain mutation, stamp last-modified, and write the whole snapshot back.
// The returned trip is always the full post-mutation aggregate, so clients
// never need a second read to see derived state (seq numbers, day plans).
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/travelflow/tripflow/internal/domain"
	"github.com/travelflow/tripflow/internal/repo"
)

// TripService implements business logic for trip operations.
type TripService struct {
	repo repo.TripRepo
	now  func() time.Time
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r, now: time.Now}
}

// Create validates and persists a new trip. Missing id, status, and day-plan
// map are filled in; day plans are synced from the stop list before the first
// write.
func (s *TripService) Create(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	if trip.ID == "" {
		trip.ID = uuid.NewString()
	}
	if trip.Status == "" {
		trip.Status = domain.StatusInquiry
	}
	if trip.HomeCurrency == "" {
		trip.HomeCurrency = domain.ReferenceCurrency
	}
	if err := validateTrip(trip); err != nil {
		return nil, err
	}

	trip.SyncDayPlans()
	s.touch(trip)

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns one page of trips, optionally filtered by a client/trip name
// query. Always returns a non-nil slice so handlers can encode it as [].
func (s *TripService) List(ctx context.Context, query string, page domain.PaginationParams) ([]*domain.Trip, error) {
	trips, err := s.repo.List(ctx, query, page)
	if err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []*domain.Trip{}
	}
	return trips, nil
}

// Update validates and replaces an existing trip snapshot wholesale.
func (s *TripService) Update(ctx context.Context, trip *domain.Trip) (*domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return nil, err
	}
	trip.SyncDayPlans()
	s.touch(trip)
	if err := s.repo.Update(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// UpdateStatus moves a trip to another pipeline stage.
func (s *TripService) UpdateStatus(ctx context.Context, id string, status domain.TripStatus) (*domain.Trip, error) {
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	return s.mutate(ctx, id, func(t *domain.Trip) error {
		t.Status = status
		return nil
	})
}

// Duplicate copies an existing trip under a fresh ID. Everything carries
// over unchanged, pipeline stage included; only the ID, name, and
// last-modified stamp differ.
func (s *TripService) Duplicate(ctx context.Context, id string) (*domain.Trip, error) {
	src, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cp, err := domain.CloneTrip(src)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Duplicate: %w", err)
	}
	cp.ID = uuid.NewString()
	cp.TripName = src.TripName + " (Copy)"
	s.touch(cp)

	if err := s.repo.Create(ctx, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

// mutate loads a trip, applies fn, stamps last-modified, and saves the
// snapshot. fn errors abort without writing.
func (s *TripService) mutate(ctx context.Context, id string, fn func(*domain.Trip) error) (*domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(trip); err != nil {
		return nil, err
	}
	s.touch(trip)
	if err := s.repo.Update(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

func (s *TripService) touch(t *domain.Trip) {
	t.LastModified = s.now().UnixMilli()
}

// validateTrip enforces the invariants every stored snapshot must satisfy:
// a non-blank client name, a known status, and per-stop date ranges that do
// not end before they start.
func validateTrip(t *domain.Trip) error {
	if strings.TrimSpace(t.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", domain.ErrValidation)
	}
	if t.Status != "" && !domain.ValidStatus(t.Status) {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, t.Status)
	}
	for _, stop := range t.Stops {
		if stop.Start != "" && stop.End != "" && stop.End < stop.Start {
			return fmt.Errorf("%w: stop %q ends before it starts", domain.ErrValidation, stop.Place)
		}
	}
	return nil
}

