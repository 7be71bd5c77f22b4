// Package service contains the business logic for the trip planner backend.
// Services enforce the confirmation state machine and orchestrate repo and
// mail calls. No SQL and no HTTP live here.
package service

import (
	"fmt"

	"github.com/google/uuid"
)

// Links builds the public URLs embedded in redirects and confirmation emails.
// Both base URLs come from configuration and must not have a trailing slash
// (config.Load normalises them).
type Links struct {
	// WebBaseURL is the public base URL of the frontend.
	WebBaseURL string
	// APIBaseURL is the public base URL of this API.
	APIBaseURL string
}

// TripPage returns the frontend page for a trip. Confirmation flows redirect
// here whether or not they mutated anything.
func (l Links) TripPage(tripID uuid.UUID) string {
	return fmt.Sprintf("%s/trips/%s", l.WebBaseURL, tripID)
}

// ParticipantConfirm returns the per-participant confirmation endpoint
// embedded in every invitation email. Trip confirmation emails use this same
// per-participant link, not a trip-level one.
func (l Links) ParticipantConfirm(participantID uuid.UUID) string {
	return fmt.Sprintf("%s/participants/%s/confirm", l.APIBaseURL, participantID)
}
