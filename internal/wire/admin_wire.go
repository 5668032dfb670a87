package wire

import (
	"net/http"

	"solar-marketplace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	authMW func(http.Handler) http.Handler,
	adminMW func(http.Handler) http.Handler,
) {
	// All moderation routes require an authenticated admin.
	r.With(authMW, adminMW).Get("/api/v1/admin/get", adminHandler.Queue)
	r.With(authMW, adminMW).Patch("/api/v1/admin/update/{id}", adminHandler.Transition)
	r.With(authMW, adminMW).Patch("/api/v1/admin/accounts/{id}/deactivate", adminHandler.DeactivateAccount)
	r.With(authMW, adminMW).Patch("/api/v1/admin/accounts/{id}/reactivate", adminHandler.ReactivateAccount)
	r.With(authMW, adminMW).Patch("/api/v1/admin/shops/{id}/verify", adminHandler.VerifyShop)
}
