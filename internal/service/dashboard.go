package service

import (
	"context"
	"time"

	"github.com/travelflow/tripflow/internal/domain"
	"github.com/travelflow/tripflow/internal/repo"
)

// DashboardService derives the agency's CRM views: the Kanban pipeline,
// pipeline value, and the upcoming-departure list. Everything here is
// computed fresh from the trip list on every call — there is no cached
// aggregate to invalidate.
type DashboardService struct {
	repo repo.TripRepo
	now  func() time.Time
}

// NewDashboardService constructs a DashboardService backed by the provided
// TripRepo.
func NewDashboardService(r repo.TripRepo) *DashboardService {
	return &DashboardService{repo: r, now: time.Now}
}

// Pipeline is the dashboard snapshot: one column per stage plus the summed
// open-pipeline value.
type Pipeline struct {
	Stages []domain.StageSummary `json:"stages"`
	Value  float64               `json:"value"`
}

// Pipeline groups all trips into Kanban columns and totals the value of the
// open stages.
func (s *DashboardService) Pipeline(ctx context.Context) (Pipeline, error) {
	trips, err := s.load(ctx)
	if err != nil {
		return Pipeline{}, err
	}
	return Pipeline{
		Stages: domain.GroupByStage(trips),
		Value:  domain.PipelineValue(trips),
	}, nil
}

// Departures lists upcoming departures across all trips, soonest first.
func (s *DashboardService) Departures(ctx context.Context) ([]domain.Departure, error) {
	trips, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	deps := domain.UpcomingDepartures(trips, s.now())
	if deps == nil {
		deps = []domain.Departure{}
	}
	return deps, nil
}

func (s *DashboardService) load(ctx context.Context) ([]domain.Trip, error) {
	// The dashboard derives over every trip, so no page bound is applied.
	ptrs, err := s.repo.List(ctx, "", domain.PaginationParams{})
	if err != nil {
		return nil, err
	}
	trips := make([]domain.Trip, 0, len(ptrs))
	for _, t := range ptrs {
		trips = append(trips, *t)
	}
	return trips, nil
}
