package handler

import (
	"errors"
	"net/http"

	"github.com/plannerhq/backend/internal/domain"
)

// handleGetTrip handles GET /trips/{tripID}.
func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeValidation(w, r, "trip id must be a valid UUID")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, r, "trip not found")
			return
		}
		writeInternal(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, trip)
}

// handleListParticipants handles GET /trips/{tripID}/participants.
func (s *Server) handleListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeValidation(w, r, "trip id must be a valid UUID")
		return
	}

	participants, err := s.trips.Participants(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, r, "trip not found")
			return
		}
		writeInternal(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{"participants": participants})
}

// handleConfirmTrip handles GET /trips/{tripID}/confirm.
// On success the browser is redirected to the trip's frontend page — this is
// the endpoint trip owners reach from their confirmation email.
func (s *Server) handleConfirmTrip(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeValidation(w, r, "trip id must be a valid UUID")
		return
	}

	redirect, err := s.confirmations.ConfirmTrip(r.Context(), tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, r, "trip not found")
			return
		}
		writeInternal(w, r, err)
		return
	}

	http.Redirect(w, r, redirect, http.StatusFound)
}
