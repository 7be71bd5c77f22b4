// Package domain contains the core data types for the trip planner backend.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, mail, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a planned journey to a destination.
// A trip is the top-level aggregate; participants belong to a trip.
//
// IsConfirmed is monotonic: the trip confirmation flow sets it exactly once
// and nothing ever resets it.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}
