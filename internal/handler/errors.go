package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serialises v with the given status. Encoding failures are
// logged, not surfaced — the status line has already been written.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "encode response", "error", err)
	}
}

// writeNotFound responds 404 with the given message. The caller supplies the
// message (e.g. "trip not found") because the handler is the layer that
// knows what was being looked up.
func writeNotFound(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusNotFound, ErrorResponse{
		Error: ErrorDetail{Code: "not_found", Message: message},
	})
}

// writeValidation responds 422 for input rejected before or during service
// validation (malformed UUID, malformed email, missing body).
func writeValidation(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

// writeInternal responds 500 and logs the underlying error. The body never
// leaks internals to the client.
func writeInternal(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed", "error", err)
	writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{Code: "internal_error", Message: "internal server error"},
	})
}

// pathUUID parses the named chi URL parameter as a UUID.
// The second return is false when the value is malformed; the caller should
// respond with a validation error naming the parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.UUID{}, false
	}
	return id, true
}
