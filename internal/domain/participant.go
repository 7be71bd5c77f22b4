package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person invited to a trip, identified by email.
// Exactly one participant per trip has IsOwner set; the owner is created
// together with the trip and never receives bulk confirmation emails.
//
// IsConfirmed is monotonic: once true it is never reset by any operation
// in this backend.
type Participant struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	TripID      uuid.UUID `json:"trip_id"`
	IsOwner     bool      `json:"is_owner"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}
