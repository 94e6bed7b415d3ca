package handler

import (
	"net/http"

	"github.com/osse101/GoldenEgg_Go/internal/game"
	"github.com/osse101/GoldenEgg_Go/internal/logger"
)

// LinkIDParam is the query parameter that scopes the game state to a link
const LinkIDParam = "linkId"

// GameHandler handles the player-facing game endpoints
type GameHandler struct {
	service game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(service game.Service) *GameHandler {
	return &GameHandler{service: service}
}

// BreakEggRequest is the request body for breaking an egg
type BreakEggRequest struct {
	EggID  int  `json:"eggId" validate:"required,min=1"`
	LinkID *int `json:"linkId,omitempty" validate:"omitempty,min=1"`
}

// ResetGameResponse is the body returned after a reset
type ResetGameResponse struct {
	Success bool `json:"success"`
}

// HandleGetGameState returns the current game state
// @Summary Get game state
// @Description Returns eggs, broken order, progress and deadline. With linkId the view is scoped to that custom link.
// @Tags game
// @Produce json
// @Param linkId query int false "Custom link id"
// @Success 200 {object} domain.GameState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/game-state [get]
func (h *GameHandler) HandleGetGameState(w http.ResponseWriter, r *http.Request) {
	linkID, ok := GetOptionalIntQueryParam(r, w, LinkIDParam)
	if !ok {
		return
	}

	state, err := h.service.GetGameState(r.Context(), linkID)
	if err != nil {
		respondServiceError(w, r, "Get game state", err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleGetLeaderboard returns the leaderboard, highest score first
// @Summary Get leaderboard
// @Tags game
// @Produce json
// @Success 200 {array} domain.LeaderboardEntry
// @Router /api/leaderboard [get]
func (h *GameHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.GetLeaderboard(r.Context())
	if err != nil {
		respondServiceError(w, r, "Get leaderboard", err)
		return
	}
	respondJSON(w, http.StatusOK, board)
}

// HandleBreakEgg breaks one egg, optionally through a single-use link
// @Summary Break an egg
// @Description Draws against the egg's winning rate. A link is consumed on success and the response carries the reveal.
// @Tags game
// @Accept json
// @Produce json
// @Param request body BreakEggRequest true "Egg to break"
// @Success 200 {object} domain.BreakResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/break-egg [post]
func (h *GameHandler) HandleBreakEgg(w http.ResponseWriter, r *http.Request) {
	var req BreakEggRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Break egg"); err != nil {
		return
	}

	result, err := h.service.BreakEgg(r.Context(), req.EggID, req.LinkID)
	if err != nil {
		respondServiceError(w, r, "Break egg", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleClaimRewards moves the running total onto the leaderboard
// @Summary Claim rewards
// @Tags game
// @Produce json
// @Success 200 {object} domain.ClaimResult
// @Failure 400 {object} ErrorResponse
// @Router /api/claim-rewards [post]
func (h *GameHandler) HandleClaimRewards(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ClaimRewards(r.Context())
	if err != nil {
		respondServiceError(w, r, "Claim rewards", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleResetGame clears broken eggs and the running total
// @Summary Reset game
// @Tags game
// @Produce json
// @Success 200 {object} ResetGameResponse
// @Router /api/reset-game [post]
func (h *GameHandler) HandleResetGame(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ResetGame(r.Context()); err != nil {
		respondServiceError(w, r, "Reset game", err)
		return
	}
	logger.FromContext(r.Context()).Debug("Game reset via API")
	respondJSON(w, http.StatusOK, ResetGameResponse{Success: true})
}

// HandleGetLink returns the public view of a custom link
// @Summary Get link info
// @Tags game
// @Produce json
// @Param id path int true "Link id"
// @Success 200 {object} domain.LinkInfo
// @Failure 404 {object} ErrorResponse
// @Router /api/links/{id} [get]
func (h *GameHandler) HandleGetLink(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIntURLParam(r, w, "id")
	if !ok {
		return
	}

	info, err := h.service.GetLink(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get link", err)
		return
	}
	respondJSON(w, http.StatusOK, info)
}
