package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
	"github.com/osse101/GoldenEgg_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Message: message})
}

// RespondError writes an ErrorResponse for callers outside the handlers,
// such as middleware and router fallbacks
func RespondError(w http.ResponseWriter, status int, message string) {
	respondError(w, status, message)
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgEggNotFoundError      = "Egg not found"
	ErrMsgInvalidEggIDError     = "Invalid egg ID"
	ErrMsgEggAlreadyBrokenError = "This egg has already been broken"
	ErrMsgInvalidWinningRateErr = "Winning rate must be between 0 and 100"
	ErrMsgInvalidRewardError    = "Reward must be a non-negative whole number or a short text"
	ErrMsgLinkNotFoundError     = "Link not found"
	ErrMsgLinkAlreadyUsedError  = "This link has already been used"
	ErrMsgLinkEggMismatchError  = "This link is for a different egg"
	ErrMsgInvalidLinkError      = "Invalid link. A subdomain is required and the protocol must be http or https"
	ErrMsgNoRewardsToClaimError = "There are no rewards to claim"
	ErrMsgInvalidInputError     = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a
// message safe to show to players. Unrecognized errors become a generic 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrInvalidInput) && errors.Is(err, domain.ErrEggNotFound):
		return http.StatusBadRequest, ErrMsgInvalidEggIDError
	case errors.Is(err, domain.ErrEggNotFound):
		return http.StatusNotFound, ErrMsgEggNotFoundError
	case errors.Is(err, domain.ErrLinkNotFound):
		return http.StatusNotFound, ErrMsgLinkNotFoundError
	case errors.Is(err, domain.ErrEggAlreadyBroken):
		return http.StatusBadRequest, ErrMsgEggAlreadyBrokenError
	case errors.Is(err, domain.ErrLinkAlreadyUsed):
		return http.StatusBadRequest, ErrMsgLinkAlreadyUsedError
	case errors.Is(err, domain.ErrLinkEggMismatch):
		return http.StatusBadRequest, ErrMsgLinkEggMismatchError
	case errors.Is(err, domain.ErrInvalidWinningRate):
		return http.StatusBadRequest, ErrMsgInvalidWinningRateErr
	case errors.Is(err, domain.ErrInvalidReward):
		return http.StatusBadRequest, ErrMsgInvalidRewardError
	case errors.Is(err, domain.ErrInvalidLink):
		return http.StatusBadRequest, ErrMsgInvalidLinkError
	case errors.Is(err, domain.ErrNoRewardsToClaim):
		return http.StatusBadRequest, ErrMsgNoRewardsToClaimError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
