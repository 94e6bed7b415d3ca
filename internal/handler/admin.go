package handler

import (
	"net/http"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
	"github.com/osse101/GoldenEgg_Go/internal/game"
)

// AdminHandler handles egg configuration and link management
type AdminHandler struct {
	service game.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service game.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// UpdateEggRequest is the request body for configuring an egg
type UpdateEggRequest struct {
	EggID       int            `json:"eggId" validate:"required,min=1"`
	Reward      *domain.Reward `json:"reward" validate:"required"`
	WinningRate *float64       `json:"winningRate" validate:"required,min=0,max=100"`
}

// SetEggBrokenRequest is the request body for overriding an egg's broken flag
type SetEggBrokenRequest struct {
	EggID  int   `json:"eggId" validate:"required,min=1"`
	Broken *bool `json:"broken" validate:"required"`
}

// CreateLinkRequest is the request body for creating a custom link
type CreateLinkRequest struct {
	Domain    string `json:"domain,omitempty" validate:"omitempty,hostname_rfc1123,max=253"`
	Subdomain string `json:"subdomain" validate:"required,hostname_rfc1123,max=63"`
	Path      string `json:"path,omitempty" validate:"max=200"`
	Protocol  string `json:"protocol,omitempty" validate:"protocol"`
	EggID     int    `json:"eggId" validate:"required,min=1"`
}

// HandleListEggs returns every egg's configuration
// @Summary List eggs
// @Tags admin
// @Produce json
// @Success 200 {array} domain.Egg
// @Failure 401 {object} ErrorResponse
// @Router /api/admin/eggs [get]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleListEggs(w http.ResponseWriter, r *http.Request) {
	eggs, err := h.service.ListEggs(r.Context())
	if err != nil {
		respondServiceError(w, r, "List eggs", err)
		return
	}
	respondJSON(w, http.StatusOK, eggs)
}

// HandleUpdateEgg sets an egg's reward and winning rate
// @Summary Update egg
// @Description Reward may be a whole number or promotional text. Winning rate is a percentage in [0, 100].
// @Tags admin
// @Accept json
// @Produce json
// @Param request body UpdateEggRequest true "Egg configuration"
// @Success 200 {object} domain.Egg
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/eggs [post]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleUpdateEgg(w http.ResponseWriter, r *http.Request) {
	var req UpdateEggRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update egg"); err != nil {
		return
	}

	egg, err := h.service.UpdateEgg(r.Context(), req.EggID, *req.Reward, *req.WinningRate)
	if err != nil {
		respondServiceError(w, r, "Update egg", err)
		return
	}
	respondJSON(w, http.StatusOK, egg)
}

// HandleSetEggBroken overrides an egg's broken flag without a draw
// @Summary Set egg broken
// @Tags admin
// @Accept json
// @Produce json
// @Param request body SetEggBrokenRequest true "Override"
// @Success 200 {object} domain.Egg
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/set-egg-broken [post]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleSetEggBroken(w http.ResponseWriter, r *http.Request) {
	var req SetEggBrokenRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set egg broken"); err != nil {
		return
	}

	egg, err := h.service.SetEggBroken(r.Context(), req.EggID, *req.Broken)
	if err != nil {
		respondServiceError(w, r, "Set egg broken", err)
		return
	}
	respondJSON(w, http.StatusOK, egg)
}

// HandleListLinks returns every custom link
// @Summary List links
// @Tags admin
// @Produce json
// @Success 200 {array} domain.CustomLink
// @Router /api/admin/links [get]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.service.ListLinks(r.Context())
	if err != nil {
		respondServiceError(w, r, "List links", err)
		return
	}
	respondJSON(w, http.StatusOK, links)
}

// HandleCreateLink creates a single-use custom link bound to one egg
// @Summary Create link
// @Description Domain defaults to the configured domain and protocol to https. A random reward is drawn for the link.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body CreateLinkRequest true "Link"
// @Success 201 {object} domain.CustomLink
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/links [post]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleCreateLink(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create link"); err != nil {
		return
	}

	link, err := h.service.CreateLink(r.Context(), domain.NewLink{
		Domain:    req.Domain,
		Subdomain: req.Subdomain,
		Path:      req.Path,
		Protocol:  req.Protocol,
		EggID:     req.EggID,
	})
	if err != nil {
		respondServiceError(w, r, "Create link", err)
		return
	}
	respondJSON(w, http.StatusCreated, link)
}

// HandleDeleteLink removes a custom link
// @Summary Delete link
// @Tags admin
// @Produce json
// @Param id path int true "Link id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/admin/links/{id} [delete]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleDeleteLink(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIntURLParam(r, w, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteLink(r.Context(), id); err != nil {
		respondServiceError(w, r, "Delete link", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLinkDeleted})
}
