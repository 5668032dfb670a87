package wire

import (
	"net/http"

	"solar-marketplace/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireListing(
	r chi.Router,
	listingHandler *adaptor.ListingHandler,
	marketplaceHandler *adaptor.MarketplaceHandler,
	authMW func(http.Handler) http.Handler,
	verifiedMW func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/v1/marketplace/products", marketplaceHandler.Browse)
	r.Get("/api/v1/marketplace/products/{id}", marketplaceHandler.Get)
	// Alias kept for clients that predate the marketplace prefix.
	r.Get("/api/v1/products/browse-products", marketplaceHandler.Browse)

	// ==================== PROTECTED ROUTES ====================
	r.With(authMW).Get("/api/v1/products/mine", listingHandler.Mine)
	r.With(authMW).Patch("/api/v1/products/{id}", listingHandler.Edit)
	r.With(authMW).Delete("/api/v1/products/{id}", listingHandler.Delete)

	// Posting and resubmitting require a verified phone.
	r.With(authMW, verifiedMW).Post("/api/v1/products/post", listingHandler.Submit)
	r.With(authMW, verifiedMW).Post("/api/v1/products/{id}/resubmit", listingHandler.Resubmit)
}
