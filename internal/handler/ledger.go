package handler

import (
	"net/http"

	"github.com/osse101/GoldenEgg_Go/internal/ledger"
)

const (
	defaultBreaksLimit = 50
	maxBreaksLimit     = 500
)

// LedgerHandler serves the persisted break history
type LedgerHandler struct {
	service ledger.Service
}

func NewLedgerHandler(service ledger.Service) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// HandleRecentBreaks returns the newest ledger entries
// @Summary Recent breaks
// @Description Only available when the break ledger is enabled
// @Tags admin
// @Produce json
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {array} ledger.BreakRecord
// @Failure 400 {object} ErrorResponse
// @Router /api/admin/breaks [get]
// @Security ApiKeyAuth
func (h *LedgerHandler) HandleRecentBreaks(w http.ResponseWriter, r *http.Request) {
	limit, ok := GetOptionalIntQueryParam(r, w, "limit")
	if !ok {
		return
	}

	n := defaultBreaksLimit
	if limit != nil {
		n = min(*limit, maxBreaksLimit)
	}

	records, err := h.service.RecentBreaks(r.Context(), n)
	if err != nil {
		respondServiceError(w, r, "Recent breaks", err)
		return
	}
	if records == nil {
		records = []ledger.BreakRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}
