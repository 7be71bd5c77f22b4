package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/repo"
)

// TripService implements the read-only trip surface: trip details and the
// participant list shown on the trip page.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo) *TripService {
	return &TripService{trips: trips, participants: participants}
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Participants returns all participants of a trip ordered by creation time.
// Always returns a non-nil slice so callers can safely range over it.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Participants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.TripService.Participants: %w", err)
	}

	participants, err := s.participants.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Participants: %w", err)
	}
	if participants == nil {
		return []domain.Participant{}, nil
	}
	return participants, nil
}
