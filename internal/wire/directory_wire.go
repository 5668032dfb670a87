package wire

import (
	"net/http"

	"solar-marketplace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDirectory(
	r chi.Router,
	directoryHandler *adaptor.DirectoryHandler,
	authMW func(http.Handler) http.Handler,
	verifiedMW func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/v1/marketplace/shops", directoryHandler.BrowseShops)
	r.Get("/api/v1/marketplace/shops/{id}", directoryHandler.GetShop)
	r.Get("/api/v1/marketplace/engineers", directoryHandler.BrowseEngineers)
	r.Get("/api/v1/marketplace/engineers/{id}", directoryHandler.GetEngineer)

	// ==================== PROTECTED ROUTES ====================
	r.With(authMW, verifiedMW).Post("/api/v1/shops", directoryHandler.CreateShop)
	r.With(authMW).Patch("/api/v1/shops/{id}", directoryHandler.UpdateShop)
	r.With(authMW).Delete("/api/v1/shops/{id}", directoryHandler.DeleteShop)

	r.With(authMW, verifiedMW).Post("/api/v1/engineers", directoryHandler.CreateEngineer)
	r.With(authMW).Patch("/api/v1/engineers/{id}", directoryHandler.UpdateEngineer)
	r.With(authMW).Delete("/api/v1/engineers/{id}", directoryHandler.DeleteEngineer)
}
