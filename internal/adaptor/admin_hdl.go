package adaptor

import (
	"encoding/json"
	"net/http"

	"solar-marketplace/internal/data/entity"
	"solar-marketplace/internal/dto/request"
	"solar-marketplace/internal/usecase"
	"solar-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.ModerationService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.ModerationService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// Queue handles GET /api/v1/admin/get. Defaults to the pending review queue;
// a status query parameter selects another bucket.
func (h *AdminHandler) Queue(w http.ResponseWriter, r *http.Request) {
	status := entity.ListingStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = entity.StatusPending
	}

	page := utils.ParseInt(r.URL.Query().Get("page"), 1)
	perPage := utils.ParseInt(r.URL.Query().Get("per_page"), 10)

	response, err := h.service.ListForReview(r.Context(), status, page, perPage)
	if err != nil {
		respondError(w, h.log, err, "list review queue")
		return
	}

	utils.ResponseSuccess(w, "Review queue retrieved", response)
}

// Transition handles PATCH /api/v1/admin/update/{id}
func (h *AdminHandler) Transition(w http.ResponseWriter, r *http.Request) {
	adminID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.TransitionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	response, err := h.service.Transition(r.Context(), adminID, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "transition listing")
		return
	}

	utils.ResponseSuccess(w, "Listing status updated", response)
}

// DeactivateAccount handles PATCH /api/v1/admin/accounts/{id}/deactivate
func (h *AdminHandler) DeactivateAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeactivateAccount(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "deactivate account")
		return
	}

	utils.ResponseSuccess(w, "Account deactivated", nil)
}

// ReactivateAccount handles PATCH /api/v1/admin/accounts/{id}/reactivate
func (h *AdminHandler) ReactivateAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ReactivateAccount(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "reactivate account")
		return
	}

	utils.ResponseSuccess(w, "Account reactivated", nil)
}

// VerifyShop handles PATCH /api/v1/admin/shops/{id}/verify
func (h *AdminHandler) VerifyShop(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Verified *bool `json:"verified" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	if err := h.service.VerifyShop(r.Context(), chi.URLParam(r, "id"), *req.Verified); err != nil {
		respondError(w, h.log, err, "verify shop")
		return
	}

	utils.ResponseSuccess(w, "Shop verification updated", nil)
}
