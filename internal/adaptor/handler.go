package adaptor

import (
	"net/http"

	"solar-marketplace/internal/usecase"
	"solar-marketplace/pkg/apperr"
	"solar-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Listing     *ListingHandler
	Marketplace *MarketplaceHandler
	Admin       *AdminHandler
	Directory   *DirectoryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Listing:     NewListingHandler(service.Listing, log),
		Marketplace: NewMarketplaceHandler(service.Listing, log),
		Admin:       NewAdminHandler(service.Moderation, log),
		Directory:   NewDirectoryHandler(service.Directory, log),
	}
}

// respondError maps a service error to the response envelope. Internal
// failures are logged with their cause and answered with a generic message.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	kind := apperr.KindOf(err)

	if kind == apperr.KindInternal {
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	var details any
	if fields := apperr.FieldsOf(err); len(fields) > 0 {
		details = fields
	}

	log.Warn(operation+" failed", zap.Error(err))
	utils.ResponseJSON(w, apperr.HTTPStatus(kind), utils.StatusFail, apperr.MessageOf(err), nil, details)
}
