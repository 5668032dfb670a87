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

type DirectoryHandler struct {
	service usecase.DirectoryService
	log     *zap.Logger
}

func NewDirectoryHandler(service usecase.DirectoryService, log *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		service: service,
		log:     log,
	}
}

// ==================== SHOPS ====================

// CreateShop handles POST /api/v1/shops
func (h *DirectoryHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ShopRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	response, err := h.service.CreateShop(r.Context(), ownerID, &req)
	if err != nil {
		respondError(w, h.log, err, "create shop")
		return
	}

	utils.ResponseCreated(w, "Shop created", response)
}

// UpdateShop handles PATCH /api/v1/shops/{id}
func (h *DirectoryHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ShopUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	response, err := h.service.UpdateShop(r.Context(), ownerID, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "update shop")
		return
	}

	utils.ResponseSuccess(w, "Shop updated", response)
}

// DeleteShop handles DELETE /api/v1/shops/{id}
func (h *DirectoryHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	if err := h.service.DeleteShop(r.Context(), actorID, entity.AccountRole(role), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "delete shop")
		return
	}

	utils.ResponseSuccess(w, "Shop deleted", nil)
}

// GetShop handles GET /api/v1/marketplace/shops/{id}
func (h *DirectoryHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetShop(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get shop")
		return
	}

	utils.ResponseSuccess(w, "Shop retrieved", response)
}

// BrowseShops handles GET /api/v1/marketplace/shops
func (h *DirectoryHandler) BrowseShops(w http.ResponseWriter, r *http.Request) {
	filter := usecase.DirectoryFilter{
		Region:   optionalString(r.URL.Query().Get("region")),
		Locality: optionalString(r.URL.Query().Get("locality")),
		Page:     utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage:  utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}

	response, err := h.service.BrowseShops(r.Context(), filter)
	if err != nil {
		respondError(w, h.log, err, "browse shops")
		return
	}

	utils.ResponseSuccess(w, "Shops retrieved", response)
}

// ==================== ENGINEERS ====================

// CreateEngineer handles POST /api/v1/engineers
func (h *DirectoryHandler) CreateEngineer(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.EngineerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	response, err := h.service.CreateEngineer(r.Context(), ownerID, &req)
	if err != nil {
		respondError(w, h.log, err, "create engineer")
		return
	}

	utils.ResponseCreated(w, "Engineer profile created", response)
}

// UpdateEngineer handles PATCH /api/v1/engineers/{id}
func (h *DirectoryHandler) UpdateEngineer(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.EngineerUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FirstValidationMessage(validationErrors), utils.FieldErrorMap(validationErrors))
		return
	}

	response, err := h.service.UpdateEngineer(r.Context(), ownerID, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "update engineer")
		return
	}

	utils.ResponseSuccess(w, "Engineer profile updated", response)
}

// DeleteEngineer handles DELETE /api/v1/engineers/{id}
func (h *DirectoryHandler) DeleteEngineer(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetAccountIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	if err := h.service.DeleteEngineer(r.Context(), actorID, entity.AccountRole(role), chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "delete engineer")
		return
	}

	utils.ResponseSuccess(w, "Engineer profile deleted", nil)
}

// GetEngineer handles GET /api/v1/marketplace/engineers/{id}
func (h *DirectoryHandler) GetEngineer(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetEngineer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get engineer")
		return
	}

	utils.ResponseSuccess(w, "Engineer retrieved", response)
}

// BrowseEngineers handles GET /api/v1/marketplace/engineers
func (h *DirectoryHandler) BrowseEngineers(w http.ResponseWriter, r *http.Request) {
	filter := usecase.DirectoryFilter{
		Region:    optionalString(r.URL.Query().Get("region")),
		Locality:  optionalString(r.URL.Query().Get("locality")),
		Specialty: optionalString(r.URL.Query().Get("specialty")),
		Page:      utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage:   utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}

	response, err := h.service.BrowseEngineers(r.Context(), filter)
	if err != nil {
		respondError(w, h.log, err, "browse engineers")
		return
	}

	utils.ResponseSuccess(w, "Engineers retrieved", response)
}
