package response

import (
	"time"

	"solar-marketplace/internal/data/entity"
)

type ListingResponse struct {
	ID              string               `json:"id"`
	OwnerID         string               `json:"owner_id"`
	Name            string               `json:"name"`
	Description     *string              `json:"description,omitempty"`
	Brand           *string              `json:"brand,omitempty"`
	Category        string               `json:"category"`
	Condition       string               `json:"condition"`
	Price           float64              `json:"price"`
	Currency        string               `json:"currency"`
	Phone           string               `json:"phone"`
	WhatsApp        *string              `json:"whatsapp,omitempty"`
	Region          string               `json:"region"`
	Locality        string               `json:"locality"`
	Status          entity.ListingStatus `json:"status"`
	RejectionReason *string              `json:"rejection_reason,omitempty"`
	ExpiresAt       time.Time            `json:"expires_at"`
	CreatedAt       time.Time            `json:"created_at"`
}

func ListingToResponse(listing *entity.Listing) ListingResponse {
	return ListingResponse{
		ID:              listing.ID.String(),
		OwnerID:         listing.OwnerID.String(),
		Name:            listing.Name,
		Description:     listing.Description,
		Brand:           listing.Brand,
		Category:        listing.Category,
		Condition:       listing.Condition,
		Price:           listing.Price,
		Currency:        listing.Currency,
		Phone:           listing.Phone,
		WhatsApp:        listing.WhatsApp,
		Region:          listing.Region,
		Locality:        listing.Locality,
		Status:          listing.Status,
		RejectionReason: listing.RejectionReason,
		ExpiresAt:       listing.ExpiresAt,
		CreatedAt:       listing.CreatedAt,
	}
}

func ListingsToResponse(listings []*entity.Listing) []ListingResponse {
	responses := make([]ListingResponse, len(listings))
	for i, listing := range listings {
		responses[i] = ListingToResponse(listing)
	}
	return responses
}

// ModerationListingResponse is the admin view, including reviewer fields.
type ModerationListingResponse struct {
	ListingResponse
	ReviewedBy *string    `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

func ListingToModerationResponse(listing *entity.Listing) ModerationListingResponse {
	resp := ModerationListingResponse{
		ListingResponse: ListingToResponse(listing),
		ReviewedAt:      listing.ReviewedAt,
	}

	if listing.ReviewedBy != nil {
		reviewer := listing.ReviewedBy.String()
		resp.ReviewedBy = &reviewer
	}

	return resp
}
