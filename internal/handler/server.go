// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, participant.go, invite.go, health.go) but all share the
// same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/plannerhq/backend/internal/domain"
)

// TripServicer defines the read operations the trip handlers depend on.
// Defining interfaces here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Participants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

// ConfirmationServicer defines the confirmation operations. Both methods
// return the frontend URL the caller is redirected to.
type ConfirmationServicer interface {
	ConfirmTrip(ctx context.Context, tripID uuid.UUID) (string, error)
	ConfirmParticipant(ctx context.Context, participantID uuid.UUID) (string, error)
}

// InviteServicer defines the invite operation.
type InviteServicer interface {
	Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
}

// Server holds the dependencies for all API endpoints.
// Wire it in main.go via Routes(). Methods are in domain-specific files but
// all operate on this struct.
type Server struct {
	trips         TripServicer
	confirmations ConfirmationServicer
	invites       InviteServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, confirmations ConfirmationServicer, invites InviteServicer) *Server {
	return &Server{trips: trips, confirmations: confirmations, invites: invites}
}

// Routes returns the chi router with every endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)

	r.Route("/trips/{tripID}", func(r chi.Router) {
		r.Get("/", s.handleGetTrip)
		r.Get("/participants", s.handleListParticipants)
		r.Get("/confirm", s.handleConfirmTrip)
		r.Post("/invites", s.handleCreateInvite)
	})

	r.Get("/participants/{participantID}/confirm", s.handleConfirmParticipant)

	return r
}
