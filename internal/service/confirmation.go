package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/mail"
	"github.com/plannerhq/backend/internal/repo"
)

// ConfirmationService implements the trip and participant confirmation flows.
//
// Both flows are one-way, idempotent state transitions: the repo Confirm
// methods are single conditional updates that report whether a row actually
// changed, and the trip notification fan-out fires only on a real
// false→true transition. Repeated calls yield the same redirect with no
// further side effects.
type ConfirmationService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       mail.Mailer
	from         mail.Sender
	links        Links
}

// NewConfirmationService constructs a ConfirmationService.
func NewConfirmationService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer mail.Mailer, from mail.Sender, links Links) *ConfirmationService {
	return &ConfirmationService{
		trips:        trips,
		participants: participants,
		mailer:       mailer,
		from:         from,
		links:        links,
	}
}

// ConfirmTrip confirms the trip and, when this call performed the actual
// transition, emails a confirmation link to every non-owner participant.
// All sends are dispatched concurrently and awaited; their failures are
// aggregated rather than aborting sibling sends.
//
// Returns the frontend trip page URL to redirect the caller to.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *ConfirmationService) ConfirmTrip(ctx context.Context, tripID uuid.UUID) (string, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return "", fmt.Errorf("service.ConfirmationService.ConfirmTrip: %w", err)
	}

	redirect := s.links.TripPage(tripID)

	changed, err := s.trips.Confirm(ctx, tripID)
	if err != nil {
		return "", fmt.Errorf("service.ConfirmationService.ConfirmTrip: %w", err)
	}
	if !changed {
		// Already confirmed — same redirect, no notifications.
		return redirect, nil
	}

	guests, err := s.participants.ListGuestsByTrip(ctx, tripID)
	if err != nil {
		return "", fmt.Errorf("service.ConfirmationService.ConfirmTrip: %w", err)
	}

	if err := s.notifyAll(ctx, trip, guests); err != nil {
		// The trip is confirmed at this point regardless; the mutation is
		// not rolled back when delivery fails.
		return "", fmt.Errorf("service.ConfirmationService.ConfirmTrip: %w", err)
	}

	return redirect, nil
}

// ConfirmParticipant confirms a single participant's attendance.
// Returns the owning trip's frontend page URL to redirect the caller to.
// Returns domain.ErrNotFound if the participant does not exist.
func (s *ConfirmationService) ConfirmParticipant(ctx context.Context, participantID uuid.UUID) (string, error) {
	p, err := s.participants.GetByID(ctx, participantID)
	if err != nil {
		return "", fmt.Errorf("service.ConfirmationService.ConfirmParticipant: %w", err)
	}

	redirect := s.links.TripPage(p.TripID)
	if p.IsConfirmed {
		return redirect, nil
	}

	// The conditional update makes a concurrent duplicate call harmless:
	// both set the same final value, at most one observes a change.
	if _, err := s.participants.Confirm(ctx, participantID); err != nil {
		return "", fmt.Errorf("service.ConfirmationService.ConfirmParticipant: %w", err)
	}

	return redirect, nil
}

// notifyAll emails every guest concurrently and waits for all sends to
// settle. Every send is attempted; failures are collected with multierr so
// one bad address does not mask or abort the rest.
func (s *ConfirmationService) notifyAll(ctx context.Context, trip domain.Trip, guests []domain.Participant) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)

	for _, guest := range guests {
		wg.Add(1)
		go func(p domain.Participant) {
			defer wg.Done()
			if err := s.notify(ctx, trip, p); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, err)
				mu.Unlock()
			}
		}(guest)
	}

	wg.Wait()
	return errs
}

// notify renders and sends the confirmation email for a single participant.
func (s *ConfirmationService) notify(ctx context.Context, trip domain.Trip, p domain.Participant) error {
	msg, err := mail.ConfirmationMessage(s.from, trip, p.Email, s.links.ParticipantConfirm(p.ID))
	if err != nil {
		return err
	}
	if _, err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("notify %s: %w", p.Email, err)
	}
	return nil
}
