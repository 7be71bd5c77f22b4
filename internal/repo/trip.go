// Package repo contains all database access logic for the trip planner backend.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/plannerhq/backend/internal/domain"
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

// TripRepo defines the persistence operations for trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the services to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// Confirm flips is_confirmed to true in a single conditional update.
	// It reports whether a row actually transitioned (false when the trip
	// was already confirmed — the update matches no row in that case).
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Confirm(ctx context.Context, id uuid.UUID) (bool, error)
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

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (destination, starts_at, ends_at)
		VALUES (@destination, @starts_at, @ends_at)
		RETURNING id, destination, starts_at, ends_at, is_confirmed, created_at`

	args := pgx.NamedArgs{
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `
		SELECT id, destination, starts_at, ends_at, is_confirmed, created_at
		FROM trips
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// Confirm performs the confirmation transition as one atomic conditional
// update. The WHERE clause closes the check-then-act race: two concurrent
// calls both succeed at the SQL level but exactly one observes changed=true.
func (r *pgTripRepo) Confirm(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `
		UPDATE trips
		SET is_confirmed = true
		WHERE id = @id AND NOT is_confirmed`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return false, fmt.Errorf("repo.TripRepo.Confirm: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// No row matched: either the trip is already confirmed or it does not
	// exist. Distinguish the two so callers get a proper NotFound.
	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM trips WHERE id = @id)`,
		pgx.NamedArgs{"id": id}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repo.TripRepo.Confirm: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("repo.TripRepo.Confirm: %w", domain.ErrNotFound)
	}
	return false, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t  domain.Trip
		id pgtype.UUID
	)

	err := s.Scan(&id, &t.Destination, &t.StartsAt, &t.EndsAt, &t.IsConfirmed, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	return t, nil
}
