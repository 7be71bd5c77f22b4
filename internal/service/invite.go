package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/plannerhq/backend/internal/domain"
	"github.com/plannerhq/backend/internal/mail"
	"github.com/plannerhq/backend/internal/repo"
)

// InviteService creates new participants and sends them their confirmation
// email.
type InviteService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       mail.Mailer
	from         mail.Sender
	links        Links
}

// NewInviteService constructs an InviteService.
func NewInviteService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer mail.Mailer, from mail.Sender, links Links) *InviteService {
	return &InviteService{
		trips:        trips,
		participants: participants,
		mailer:       mailer,
		from:         from,
		links:        links,
	}
}

// Invite attaches a new unconfirmed, non-owner participant to the trip and
// sends exactly one confirmation email, awaited before returning.
//
// A delivery failure propagates to the caller but does NOT roll back the
// participant row — the record persists and the participant can be
// re-invited or confirmed through other means.
//
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation if the email is empty. Full email syntax is enforced
// at the HTTP boundary.
func (s *InviteService) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	if strings.TrimSpace(email) == "" {
		return domain.Participant{}, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.InviteService.Invite: %w", err)
	}

	p, err := s.participants.Create(ctx, domain.Participant{
		Email:  email,
		TripID: tripID,
	})
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.InviteService.Invite: %w", err)
	}

	msg, err := mail.ConfirmationMessage(s.from, trip, p.Email, s.links.ParticipantConfirm(p.ID))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.InviteService.Invite: %w", err)
	}
	if _, err := s.mailer.Send(ctx, msg); err != nil {
		return domain.Participant{}, fmt.Errorf("service.InviteService.Invite: %w", err)
	}

	return p, nil
}
