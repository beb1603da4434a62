package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/travelflow/tripflow/internal/domain"
	"github.com/travelflow/tripflow/internal/repo"
)

// ImportMode decides what happens when an imported trip's ID already exists.
type ImportMode string

const (
	// ImportStrict rejects a colliding import with domain.ErrConflict so the
	// client can ask the user how to proceed.
	ImportStrict ImportMode = ""
	// ImportOverwrite replaces the stored trip with the imported one.
	ImportOverwrite ImportMode = "overwrite"
	// ImportCopy keeps the stored trip and saves the import under a fresh ID
	// with " (Copy)" appended to the trip name.
	ImportCopy ImportMode = "copy"
)

// ExportService moves whole trips in and out of the system as JSON files.
// The file format is exactly the stored snapshot, so export and import are
// lossless inverses.
type ExportService struct {
	repo repo.TripRepo
	now  func() time.Time
}

// NewExportService constructs an ExportService backed by the provided TripRepo.
func NewExportService(r repo.TripRepo) *ExportService {
	return &ExportService{repo: r, now: time.Now}
}

// Export serializes one trip for download and returns the suggested filename
// alongside the file body.
func (s *ExportService) Export(ctx context.Context, id string) (string, []byte, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}

	data, err := json.MarshalIndent(trip, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	name := strings.TrimSpace(trip.ClientName)
	if name == "" {
		name = "backup"
	}
	return fmt.Sprintf("travel_%s.json", name), data, nil
}

// Import parses an exported trip file and stores it. A trip whose ID is
// already present is handled per mode: strict imports fail with
// domain.ErrConflict, overwrite replaces the stored snapshot, copy saves
// under a fresh identity.
func (s *ExportService) Import(ctx context.Context, data []byte, mode ImportMode) (*domain.Trip, error) {
	var trip domain.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("%w: not a valid trip file: %v", domain.ErrValidation, err)
	}
	if strings.TrimSpace(trip.ID) == "" || strings.TrimSpace(trip.ClientName) == "" {
		return nil, fmt.Errorf("%w: trip file must carry an id and a clientName", domain.ErrValidation)
	}

	trip.SyncDayPlans()
	trip.LastModified = s.now().UnixMilli()

	_, err := s.repo.GetByID(ctx, trip.ID)
	switch {
	case err == nil:
		switch mode {
		case ImportOverwrite:
			if err := s.repo.Update(ctx, &trip); err != nil {
				return nil, err
			}
			return &trip, nil
		case ImportCopy:
			trip.ID = uuid.NewString()
			trip.TripName = trip.TripName + " (Copy)"
			if err := s.repo.Create(ctx, &trip); err != nil {
				return nil, err
			}
			return &trip, nil
		default:
			return nil, fmt.Errorf("trip %s already exists: %w", trip.ID, domain.ErrConflict)
		}
	case errors.Is(err, domain.ErrNotFound):
		if err := s.repo.Create(ctx, &trip); err != nil {
			return nil, err
		}
		return &trip, nil
	default:
		return nil, err
	}
}
