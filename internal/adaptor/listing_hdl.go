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

type ListingHandler struct {
	service usecase.ListingService
	log     *zap.Logger
}

func NewListingHandler(service usecase.ListingService, log *zap.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		log:     log,
	}
}

// Submit handles POST /api/v1/products/post
func (h *ListingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.SubmitListingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	response, err := h.service.Submit(r.Context(), ownerID, &req)
	if err != nil {
		respondError(w, h.log, err, "submit listing")
		return
	}

	utils.ResponseCreated(w, "Listing submitted for review", response)
}

// Mine handles GET /api/v1/products/mine
func (h *ListingHandler) Mine(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	page := utils.ParseInt(r.URL.Query().Get("page"), 1)
	perPage := utils.ParseInt(r.URL.Query().Get("per_page"), 10)

	response, err := h.service.GetOwn(r.Context(), ownerID, page, perPage)
	if err != nil {
		respondError(w, h.log, err, "list own listings")
		return
	}

	utils.ResponseSuccess(w, "Listings retrieved", response)
}

// Edit handles PATCH /api/v1/products/{id}
func (h *ListingHandler) Edit(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateListingRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	response, err := h.service.Edit(r.Context(), ownerID, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "edit listing")
		return
	}

	utils.ResponseSuccess(w, "Listing updated", response)
}

// Resubmit handles POST /api/v1/products/{id}/resubmit
func (h *ListingHandler) Resubmit(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateListingRequest

	// Body is optional; a bare resubmit keeps the listing as-is.
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}

		if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
			utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
			return
		}
	}

	response, err := h.service.Resubmit(r.Context(), ownerID, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "resubmit listing")
		return
	}

	utils.ResponseSuccess(w, "Listing resubmitted for review", response)
}

// Delete handles DELETE /api/v1/products/{id}
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	if err := h.service.Delete(r.Context(), actorID, entity.AccountRole(role), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "delete listing")
		return
	}

	utils.ResponseSuccess(w, "Listing deleted", nil)
}
