package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/cryptoassets/portal/internal/api/middleware"
	"github.com/cryptoassets/portal/internal/api/response"
	"github.com/cryptoassets/portal/internal/apperrors"
	"github.com/cryptoassets/portal/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// decodeJSON parses a request body into dst, answering 400 on malformed JSON.
// Returns false when the response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

// requireUser extracts the authenticated user ID from the request context,
// answering 401 when it is absent. Returns ("", false) when the response has
// already been written.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "authentication required", "")
		return "", false
	}
	return userID, true
}

// respondServiceError maps domain errors onto HTTP status codes:
// validation failures to 400, missing entities to 404, duplicates to 409,
// rate limiting to 429, everything else to 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		response.RespondValidationError(w, validationErr)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidQuantity),
		errors.Is(err, apperrors.ErrInvalidPrice),
		errors.Is(err, apperrors.ErrInvalidTargetPrice),
		errors.Is(err, apperrors.ErrInvalidAlertType),
		errors.Is(err, apperrors.ErrInvalidSymbol),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidOTP),
		errors.Is(err, apperrors.ErrOTPExpired):
		response.RespondError(w, http.StatusBadRequest, err.Error(), "")

	case errors.Is(err, apperrors.ErrHoldingNotFound),
		errors.Is(err, apperrors.ErrWatchlistItemNotFound),
		errors.Is(err, apperrors.ErrAssetNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		response.RespondError(w, http.StatusNotFound, err.Error(), "")

	case errors.Is(err, apperrors.ErrDuplicateWatchlistEntry):
		response.RespondError(w, http.StatusConflict, err.Error(), "")

	case errors.Is(err, apperrors.ErrOTPRateLimited):
		response.RespondError(w, http.StatusTooManyRequests, err.Error(), "")

	case errors.Is(err, apperrors.ErrInvalidSessionToken),
		errors.Is(err, apperrors.ErrSessionNotFound):
		response.RespondError(w, http.StatusUnauthorized, err.Error(), "")

	default:
		response.RespondError(w, http.StatusInternalServerError, "internal error", err.Error())
	}
}
