package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GoldenEgg_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and runs the
// struct validator. On failure the response has already been written and the
// handler should return.
//
// Example usage:
//
//	var req BreakEggRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Break egg"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Message: ErrMsgInvalidRequestSummary,
			Fields:  FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalIntQueryParam parses an optional positive integer query
// parameter. A missing parameter yields nil. If ok is false the response has
// already been written.
func GetOptionalIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (*int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		logger.FromContext(r.Context()).Warn("Invalid query parameter", "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return nil, false
	}
	return &v, true
}

// GetIntURLParam parses a positive integer chi route parameter. If ok is
// false the response has already been written.
func GetIntURLParam(r *http.Request, w http.ResponseWriter, paramName string) (int, bool) {
	raw := chi.URLParam(r, paramName)
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		logger.FromContext(r.Context()).Warn("Invalid URL parameter", "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidURLParam, paramName))
		return 0, false
	}
	return v, true
}
