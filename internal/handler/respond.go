package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/fleetflow/fleetflow/backend/internal/domain"
)

// envelope is the wire shape of every API response.
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Count   *int       `json:"count,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Machine-readable error codes carried in the envelope alongside the HTTP
// status, so clients can branch without parsing messages.
const (
	codeNotFound        = "NOT_FOUND"
	codeInvalidStatus   = "INVALID_STATUS"
	codeStateTransition = "INVALID_STATE_TRANSITION"
	codeCargoCapacity   = "CARGO_EXCEEDS_CAPACITY"
	codeValidation      = "VALIDATION_ERROR"
	codeDuplicatePlate  = "DUPLICATE_PLATE"
	codeServerError     = "SERVER_ERROR"
)

func respondJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already out; nothing left to do but log.
		slog.Error("encode response", "error", err)
	}
}

// respondData writes a success envelope around a single object.
func respondData(w http.ResponseWriter, status int, data any) {
	respondJSON(w, status, envelope{Success: true, Data: data})
}

// respondList writes a success envelope with the item count, which the
// original API contract includes on every collection response.
func respondList(w http.ResponseWriter, data any, count int) {
	respondJSON(w, http.StatusOK, envelope{Success: true, Data: data, Count: &count})
}

// respondError maps a service error onto HTTP status + error code.
// Unrecognized errors become an opaque 500; the real cause is logged
// server-side rather than leaked to the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, codeServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, codeNotFound
	case errors.Is(err, domain.ErrInvalidStatus):
		status, code = http.StatusBadRequest, codeInvalidStatus
	case errors.Is(err, domain.ErrStateTransition):
		status, code = http.StatusConflict, codeStateTransition
	case errors.Is(err, domain.ErrCargoCapacity):
		status, code = http.StatusBadRequest, codeCargoCapacity
	case errors.Is(err, domain.ErrValidation):
		status, code = http.StatusBadRequest, codeValidation
	case errors.Is(err, domain.ErrDuplicate):
		status, code = http.StatusConflict, codeDuplicatePlate
	}

	message := unwrapMessage(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		message = "internal server error"
	}
	respondJSON(w, status, envelope{Success: false, Error: &errorBody{Message: message, Code: code}})
}

// respondBadRequest rejects a request before it reaches the service layer
// (malformed body, bad UUID).
func respondBadRequest(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Error:   &errorBody{Message: message, Code: codeValidation},
	})
}

// unwrapMessage strips the service call-site prefix from a wrapped sentinel
// error, e.g. "service.TripService.Create: validation error: origin is
// required" → "validation error: origin is required". The sentinel text
// itself stays: it is part of the human-readable message.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for strings.HasPrefix(msg, "service.") {
		if i := strings.Index(msg, ": "); i >= 0 {
			msg = msg[i+2:]
			continue
		}
		break
	}
	return msg
}

// decodeBody reads a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathID parses the {id} chi URL parameter.
func pathID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}
