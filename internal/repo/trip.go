// Package repo contains all database access logic for the TripFlow API.
// Each resource has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
//
// Trips are stored as whole-document snapshots: a jsonb payload column holds
// the full aggregate, and a handful of extracted columns (client name, status,
// budget) exist purely so list and dashboard queries never need to unpack
// every payload.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/travelflow/tripflow/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for trip snapshots.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip snapshot. Returns domain.ErrConflict when a
	// trip with the same ID already exists.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a single trip by its ID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// List returns trips ordered by last_modified descending. query, when
	// non-empty, filters case-insensitively on client name and trip name.
	// A zero page.Limit returns every matching trip.
	List(ctx context.Context, query string, page domain.PaginationParams) ([]*domain.Trip, error)

	// Update replaces the stored snapshot for the trip's ID.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip *domain.Trip) error

	// Delete removes a trip by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

func (r *pgTripRepo) Create(ctx context.Context, trip *domain.Trip) error {
	const q = `
		INSERT INTO trips (id, client_name, trip_name, status, total_budget, last_modified, payload)
		VALUES (@id, @client_name, @trip_name, @status, @total_budget, @last_modified, @payload)`

	args, err := tripArgs(trip)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("repo.TripRepo.Create: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	const q = `SELECT payload FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	trip, err := scanTrip(row)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return trip, nil
}

func (r *pgTripRepo) List(ctx context.Context, query string, page domain.PaginationParams) ([]*domain.Trip, error) {
	q := `SELECT payload FROM trips`
	args := pgx.NamedArgs{}
	if strings.TrimSpace(query) != "" {
		q += ` WHERE client_name ILIKE @pattern OR trip_name ILIKE @pattern`
		args["pattern"] = "%" + strings.TrimSpace(query) + "%"
	}
	q += ` ORDER BY last_modified DESC`
	if page.Limit > 0 {
		q += ` LIMIT @limit OFFSET @offset`
		args["limit"] = page.Limit
		args["offset"] = page.Offset()
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip *domain.Trip) error {
	const q = `
		UPDATE trips
		SET client_name   = @client_name,
		    trip_name     = @trip_name,
		    status        = @status,
		    total_budget  = @total_budget,
		    last_modified = @last_modified,
		    payload       = @payload
		WHERE id = @id`

	args, err := tripArgs(trip)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Update: %w", err)
	}

	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Update: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// tripArgs builds the named arguments shared by Create and Update.
// The payload column is authoritative; the rest are extracted copies.
func tripArgs(trip *domain.Trip) (pgx.NamedArgs, error) {
	payload, err := json.Marshal(trip)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return pgx.NamedArgs{
		"id":            trip.ID,
		"client_name":   trip.ClientName,
		"trip_name":     trip.TripName,
		"status":        string(trip.Status),
		"total_budget":  trip.TotalBudget,
		"last_modified": trip.LastModified,
		"payload":       payload,
	}, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip unmarshals a payload row into a domain.Trip. A payload that no
// longer unmarshals is reported as domain.ErrCorrupt rather than served
// partially decoded.
func scanTrip(s scanner) (*domain.Trip, error) {
	var payload []byte
	if err := s.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var trip domain.Trip
	if err := json.Unmarshal(payload, &trip); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorrupt, err)
	}
	return &trip, nil
}
