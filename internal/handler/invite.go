package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/plannerhq/backend/internal/domain"
)

// createInviteRequest is the body of POST /trips/{tripID}/invites.
// openapi_types.Email rejects syntactically invalid addresses during JSON
// decoding, so the service layer never sees a malformed email.
type createInviteRequest struct {
	Email openapi_types.Email `json:"email"`
}

// createInviteResponse is the 201 body: the id of the new participant.
type createInviteResponse struct {
	ParticipantID string `json:"participant_id"`
}

// handleCreateInvite handles POST /trips/{tripID}/invites.
func (s *Server) handleCreateInvite(w http.ResponseWriter, r *http.Request) {
	tripID, ok := pathUUID(r, "tripID")
	if !ok {
		writeValidation(w, r, "trip id must be a valid UUID")
		return
	}

	var req createInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidation(w, r, "email must be a valid email address")
		return
	}
	if req.Email == "" {
		writeValidation(w, r, "email is required")
		return
	}

	participant, err := s.invites.Invite(r.Context(), tripID, string(req.Email))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeNotFound(w, r, "Trip not found")
		case errors.Is(err, domain.ErrValidation):
			writeValidation(w, r, unwrapMessage(err))
		default:
			writeInternal(w, r, err)
		}
		return
	}

	writeJSON(w, r, http.StatusCreated, createInviteResponse{ParticipantID: participant.ID.String()})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.InviteService.Invite: validation error: email is required" →
// "email is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.InviteService.Invite: validation error: ",
		"validation error: ",
	} {
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
