// Package httpapi holds the shared request/response plumbing used by the
// per-domain HTTP services.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/apperrors"
)

type errorBody struct {
	Error string `json:"error"`
}

// Respond writes v as a JSON response with the given status.
func Respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// Error maps an application error to an HTTP status and writes it.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrBettingClosed):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		// Internal causes stay out of the response body.
		log.Error().Err(err).Msg("internal error")
		Respond(w, status, errorBody{Error: "internal error"})
		return
	}
	Respond(w, status, errorBody{Error: err.Error()})
}

// Decode parses the request body as JSON into v.
func Decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Validation("invalid request body: %v", err)
	}
	return nil
}

// RequestUser extracts the authenticated user ID forwarded by the auth
// proxy. Authentication itself happens upstream of this service.
func RequestUser(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		return uuid.Nil, apperrors.Forbidden("missing X-User-ID header")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid X-User-ID header %q", raw)
	}
	return id, nil
}

// PathUUID parses a UUID path parameter, failing Validation on bad input.
func PathUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid id %q", raw)
	}
	return id, nil
}
