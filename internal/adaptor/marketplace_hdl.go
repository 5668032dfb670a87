package adaptor

import (
	"net/http"
	"net/url"

	"solar-marketplace/internal/dto/request"
	"solar-marketplace/internal/usecase"
	"solar-marketplace/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MarketplaceHandler serves the public, no-auth browse surface.
type MarketplaceHandler struct {
	service usecase.ListingService
	log     *zap.Logger
}

func NewMarketplaceHandler(service usecase.ListingService, log *zap.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{
		service: service,
		log:     log,
	}
}

// Browse handles GET /api/v1/marketplace/products and its legacy alias
// GET /api/v1/products/browse-products.
func (h *MarketplaceHandler) Browse(w http.ResponseWriter, r *http.Request) {
	req := parseBrowseQuery(r.URL.Query())

	response, err := h.service.Browse(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "browse listings")
		return
	}

	utils.ResponseSuccess(w, "Listings retrieved", response)
}

// Get handles GET /api/v1/marketplace/products/{id}
func (h *MarketplaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetPublic(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get listing")
		return
	}

	utils.ResponseSuccess(w, "Listing retrieved", response)
}

func parseBrowseQuery(query url.Values) *request.BrowseListingsRequest {
	req := &request.BrowseListingsRequest{
		Category:  optionalString(query.Get("category")),
		Condition: optionalString(query.Get("condition")),
		Region:    optionalString(query.Get("region")),
		Locality:  optionalString(query.Get("locality")),
		Query:     optionalString(query.Get("q")),
		MinPrice:  utils.ParseFloat(query.Get("min_price")),
		MaxPrice:  utils.ParseFloat(query.Get("max_price")),
		SortBy:    query.Get("sort_by"),
		SortDesc:  query.Get("order") == "desc",
		Page:      utils.ParseInt(query.Get("page"), 1),
		PerPage:   utils.ParseInt(query.Get("per_page"), 10),
	}
	return req
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
