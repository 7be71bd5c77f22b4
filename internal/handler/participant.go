package handler

import (
	"errors"
	"net/http"

	"github.com/plannerhq/backend/internal/domain"
)

// handleConfirmParticipant handles GET /participants/{participantID}/confirm.
// This is the link embedded in every confirmation email. Idempotent: hitting
// it again after confirming redirects to the same trip page.
func (s *Server) handleConfirmParticipant(w http.ResponseWriter, r *http.Request) {
	participantID, ok := pathUUID(r, "participantID")
	if !ok {
		writeValidation(w, r, "participant id must be a valid UUID")
		return
	}

	redirect, err := s.confirmations.ConfirmParticipant(r.Context(), participantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeNotFound(w, r, "participant not found")
			return
		}
		writeInternal(w, r, err)
		return
	}

	http.Redirect(w, r, redirect, http.StatusFound)
}
