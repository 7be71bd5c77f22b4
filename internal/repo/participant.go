package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/plannerhq/backend/internal/domain"
)

// ParticipantRepo defines the persistence operations for participants.
type ParticipantRepo interface {
	// Create inserts a new participant and returns the persisted record.
	// is_confirmed relies on its column default (false); is_owner is taken
	// from p so trip creation can seed the owner row.
	Create(ctx context.Context, p domain.Participant) (domain.Participant, error)

	// GetByID retrieves a single participant by its UUID primary key.
	// Returns domain.ErrNotFound if no participant with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)

	// ListByTrip returns all participants of a trip ordered by creation time.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// ListGuestsByTrip returns the non-owner participants of a trip ordered
	// by creation time. The trip owner never appears in the result.
	ListGuestsByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// Confirm flips is_confirmed to true in a single conditional update and
	// reports whether a row actually transitioned.
	// Returns domain.ErrNotFound if no participant with that ID exists.
	Confirm(ctx context.Context, id uuid.UUID) (bool, error)
}

// pgParticipantRepo is the Postgres implementation of ParticipantRepo.
type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

// Create inserts a new participant row and returns the full persisted record.
func (r *pgParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	const q = `
		INSERT INTO participants (email, trip_id, is_owner)
		VALUES (@email, @trip_id, @is_owner)
		RETURNING id, email, trip_id, is_owner, is_confirmed, created_at`

	args := pgx.NamedArgs{
		"email":    p.Email,
		"trip_id":  p.TripID,
		"is_owner": p.IsOwner,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a participant by primary key.
func (r *pgParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `
		SELECT id, email, trip_id, is_owner, is_confirmed, created_at
		FROM participants
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTrip returns every participant of the trip, owner included.
func (r *pgParticipantRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return r.list(ctx, tripID, false)
}

// ListGuestsByTrip returns the participants the confirmation fan-out targets.
func (r *pgParticipantRepo) ListGuestsByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return r.list(ctx, tripID, true)
}

func (r *pgParticipantRepo) list(ctx context.Context, tripID uuid.UUID, guestsOnly bool) ([]domain.Participant, error) {
	q := `
		SELECT id, email, trip_id, is_owner, is_confirmed, created_at
		FROM participants
		WHERE trip_id = @trip_id`
	if guestsOnly {
		q += ` AND NOT is_owner`
	}
	q += ` ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.List: %w", err)
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.List: scan: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.List: rows: %w", err)
	}

	return participants, nil
}

// Confirm performs the confirmation transition as one atomic conditional
// update, mirroring TripRepo.Confirm.
func (r *pgParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `
		UPDATE participants
		SET is_confirmed = true
		WHERE id = @id AND NOT is_confirmed`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return false, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	var exists bool
	err = r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM participants WHERE id = @id)`,
		pgx.NamedArgs{"id": id}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", domain.ErrNotFound)
	}
	return false, nil
}

// scanParticipant maps a single database row into a domain.Participant.
func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &p.Email, &tripID, &p.IsOwner, &p.IsConfirmed, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Participant{}, domain.ErrNotFound
		}
		return domain.Participant{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	return p, nil
}
